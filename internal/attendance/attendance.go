package attendance

import (
	"strings"
	"time"

	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
)

type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
	StatusRemote  = "REMOTE"
)

// NormalizeStatus uppercases an incoming status and reports whether it is
// one of the known markings. Clients send lowercase variants like "present".
func NormalizeStatus(s string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusRemote:
		return normalized, true
	}
	return normalized, false
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToDataModel(a *Attendance) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModels(records []*attendanceDatamodel.Attendance) []*Attendance {
	out := make([]*Attendance, 0, len(records))
	for _, r := range records {
		out = append(out, FromDataModel(r))
	}
	return out
}
