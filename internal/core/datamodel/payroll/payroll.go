package payroll

import "time"

type Payroll struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Month      string    `gorm:"column:month;not null"`
	Year       int       `gorm:"column:year;not null"`
	BasicPay   float64   `gorm:"column:basic_pay;not null"`
	Bonus      float64   `gorm:"column:bonus"`
	Deductions float64   `gorm:"column:deductions"`
	NetPay     float64   `gorm:"column:net_pay;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
