package task

import (
	"time"

	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, *errors.AppError) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("invalid date: "+value, errors.ErrCodeInvalidDate)
}

type NewTaskDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`
	EmployeeIDs []int64 `json:"employeeIds"`
}

func (d NewTaskDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("title", d.Title).Required().MaxLength(200)
	validator.Field("description", d.Description).MaxLength(2000)

	return validator.Validate()
}

// UpdateTaskDTO replaces the whole assignment set when employeeIds is
// present; omitting the field leaves assignments untouched.
type UpdateTaskDTO struct {
	TaskID      int64    `json:"taskId"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	EmployeeIDs *[]int64 `json:"employeeIds,omitempty"`
}
