package admin

import (
	"time"

	adminDatamodel "office-management/internal/core/datamodel/admin"
	"office-management/internal/employee"
	"office-management/internal/leave"
	"office-management/internal/notification"
	"office-management/internal/payroll"
	"office-management/internal/task"
)

type Admin struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PayrollSummary decorates a payroll row with the employee it belongs to,
// which is how the dashboard table renders it.
type PayrollSummary struct {
	payroll.Payroll
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
}

// Dashboard is the admin landing aggregate: everything the console shows on
// one screen.
type Dashboard struct {
	Admin         *Admin                       `json:"admin"`
	Notifications []*notification.Notification `json:"notifications"`
	Tasks         []*task.Task                 `json:"tasks"`
	Employees     []*employee.WithAttendance   `json:"employees"`
	Leaves        []*leave.Leave               `json:"leaves"`
	Payrolls      []*PayrollSummary            `json:"payrolls"`
}

func FromDataModel(a *adminDatamodel.Admin) *Admin {
	return &Admin{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		ProfilePicture: a.ProfilePicture,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
