package task

import (
	"strings"
	"time"

	taskDatamodel "office-management/internal/core/datamodel/task"
)

// Task carries the assignment relation flattened for the API: the assignee
// ids plus their resolved emails, which is what the dashboards render.
type Task struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	DueDate        time.Time `json:"dueDate"`
	EmployeeIDs    []int64   `json:"employeeIds"`
	EmployeeEmails []string  `json:"employeeEmails"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// NormalizeStatus uppercases an incoming status and reports whether it is a
// valid task status.
func NormalizeStatus(s string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return normalized, true
	}
	return normalized, false
}

func FromDataModel(t *taskDatamodel.Task, employeeIDs []int64, employeeEmails []string) *Task {
	if employeeIDs == nil {
		employeeIDs = []int64{}
	}
	if employeeEmails == nil {
		employeeEmails = []string{}
	}
	return &Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		DueDate:        t.DueDate,
		EmployeeIDs:    employeeIDs,
		EmployeeEmails: employeeEmails,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
