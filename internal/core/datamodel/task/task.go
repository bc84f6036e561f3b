package task

import "time"

type Task struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;not null;default:PENDING"`
	DueDate     time.Time `gorm:"column:due_date"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskAssignment is the explicit join relation between tasks and employees.
type TaskAssignment struct {
	ID         int64     `gorm:"primaryKey"`
	TaskID     int64     `gorm:"column:task_id;uniqueIndex:idx_task_employee;not null"`
	EmployeeID int64     `gorm:"column:employee_id;uniqueIndex:idx_task_employee;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}
