package leave

import "time"

type Leave struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	StartDate  time.Time `gorm:"column:start_date;not null"`
	EndDate    time.Time `gorm:"column:end_date;not null"`
	Reason     string    `gorm:"column:reason"`
	Status     string    `gorm:"column:status;not null;default:PENDING"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Leave) TableName() string {
	return "leaves"
}
