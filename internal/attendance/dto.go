package attendance

import (
	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

// MarkAttendanceDTO is used by admins to record a marking for an employee.
type MarkAttendanceDTO struct {
	EmployeeID int64  `json:"employeeId"`
	Status     string `json:"status"`
}

func (d MarkAttendanceDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("employeeId", d.EmployeeID).Required()

	return validator.Validate()
}

// UpdateAttendanceDTO serves both roles on PUT /attendance/update: admins
// correct an existing record by id, employees mark their own attendance for
// today and only the status field is honored.
type UpdateAttendanceDTO struct {
	AttendanceID int64  `json:"attendanceId"`
	Status       string `json:"status"`
}
