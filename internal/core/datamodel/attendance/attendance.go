package attendance

import "time"

// One row per marking event. Same-day duplicates are permitted; re-marking
// simply inserts another row.
type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Date       time.Time `gorm:"column:date;not null"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Attendance) TableName() string {
	return "attendances"
}
