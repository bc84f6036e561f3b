package employee

import "time"

type Employee struct {
	ID             int64     `gorm:"primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	Position       string    `gorm:"column:position"`
	Department     string    `gorm:"column:department"`
	Phone          string    `gorm:"column:phone"`
	Address        string    `gorm:"column:address"`
	DateOfJoining  time.Time `gorm:"column:date_of_joining"`
	DateOfBirth    time.Time `gorm:"column:date_of_birth"`
	Salary         float64   `gorm:"column:salary"`
	ProfilePicture *string   `gorm:"column:profile_picture"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}
