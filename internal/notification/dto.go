package notification

import (
	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

type NewNotificationDTO struct {
	Message string `json:"message"`
	ForWhom string `json:"forWhom"`
}

func (d NewNotificationDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("message", d.Message).Required().MaxLength(1000)
	validator.Field("forWhom", d.ForWhom).Required()

	return validator.Validate()
}

type UpdateNotificationDTO struct {
	NotificationID int64   `json:"notificationId"`
	Message        *string `json:"message,omitempty"`
	ForWhom        *string `json:"forWhom,omitempty"`
}
