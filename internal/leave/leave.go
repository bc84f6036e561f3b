package leave

import (
	"strings"
	"time"

	leaveDatamodel "office-management/internal/core/datamodel/leave"
)

type Leave struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employeeId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	DurationDays int       `json:"durationDays"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// NormalizeStatus uppercases an incoming status and reports whether it is a
// valid leave status.
func NormalizeStatus(s string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case StatusPending, StatusApproved, StatusRejected:
		return normalized, true
	}
	return normalized, false
}

// DurationDays is the inclusive day count between start and end. A range
// whose end precedes its start yields 0; start and end dates are intended
// to be ordered but that is not enforced on write.
func DurationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return days
}

func (l *Leave) IsPending() bool {
	return l.Status == StatusPending
}

func FromDataModel(l *leaveDatamodel.Leave) *Leave {
	return &Leave{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Reason:       l.Reason,
		Status:       l.Status,
		DurationDays: DurationDays(l.StartDate, l.EndDate),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromDataModels(records []*leaveDatamodel.Leave) []*Leave {
	out := make([]*Leave, 0, len(records))
	for _, r := range records {
		out = append(out, FromDataModel(r))
	}
	return out
}
