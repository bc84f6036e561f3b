package leave

import (
	"time"

	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

const dateLayout = "2006-01-02"

// NewLeaveDTO creates a leave request. The owner id is bound from the token
// by the handler, never taken from the body.
type NewLeaveDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (d NewLeaveDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("startDate", d.StartDate).Required()
	validator.Field("endDate", d.EndDate).Required()
	validator.Field("reason", d.Reason).Required().MaxLength(500)

	return validator.Validate()
}

// UpdateLeaveDTO serves both roles on PUT /leave/update: admins transition
// the status; employees edit the date range and reason of their own pending
// request.
type UpdateLeaveDTO struct {
	LeaveID   int64   `json:"leaveId"`
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// ParseDate accepts plain dates and RFC 3339 timestamps, which is what the
// browser clients send.
func ParseDate(value string) (time.Time, *errors.AppError) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("invalid date: "+value, errors.ErrCodeInvalidDate)
}
