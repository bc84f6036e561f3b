package employee

import (
	"time"

	"office-management/internal/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	"office-management/internal/leave"
	"office-management/internal/notification"
	"office-management/internal/payroll"
	"office-management/internal/task"
)

// Employee is the API view of an employee. The password hash never leaves
// the persistence layer.
type Employee struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	DateOfJoining  time.Time `json:"dateOfJoining"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	Salary         float64   `json:"salary"`
	ProfilePicture *string   `json:"profilePicture"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// WithAttendance is the admin listing shape: each employee with their
// attendance history nested.
type WithAttendance struct {
	Employee
	Attendance []*attendance.Attendance `json:"attendance"`
}

// Info is the self-service aggregate an employee sees after login: their own
// record plus everything hanging off it.
type Info struct {
	Employee      *Employee                    `json:"employee"`
	Attendance    []*attendance.Attendance     `json:"attendance"`
	Leaves        []*leave.Leave               `json:"leaves"`
	Payrolls      []*payroll.Payroll           `json:"payrolls"`
	Tasks         []*task.Task                 `json:"tasks"`
	Notifications []*notification.Notification `json:"notifications"`
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Position:       e.Position,
		Department:     e.Department,
		Phone:          e.Phone,
		Address:        e.Address,
		DateOfJoining:  e.DateOfJoining,
		DateOfBirth:    e.DateOfBirth,
		Salary:         e.Salary,
		ProfilePicture: e.ProfilePicture,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromDataModels(records []*employeeDatamodel.Employee) []*Employee {
	out := make([]*Employee, 0, len(records))
	for _, r := range records {
		out = append(out, FromDataModel(r))
	}
	return out
}
