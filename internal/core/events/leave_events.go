package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLeaveStatusChanged = "leave.status_changed"
)

// LeaveStatusChangedEvent is published when an admin transitions a leave
// request out of PENDING. Subscribers use it to record notifications.
type LeaveStatusChangedEvent struct {
	BaseEvent
	LeaveID    int64  `json:"leave_id"`
	EmployeeID int64  `json:"employee_id"`
	Status     string `json:"status"`
}

func NewLeaveStatusChangedEvent(leaveID, employeeID int64, status string) *LeaveStatusChangedEvent {
	return &LeaveStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLeaveStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":    leaveID,
				"employee_id": employeeID,
				"status":      status,
			},
		},
		LeaveID:    leaveID,
		EmployeeID: employeeID,
		Status:     status,
	}
}
