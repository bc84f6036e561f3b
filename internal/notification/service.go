package notification

import (
	"context"
	"fmt"
	"log/slog"

	errors "office-management/internal"
	notificationDatamodel "office-management/internal/core/datamodel/notification"
	"office-management/internal/core/events"
)

var (
	ErrNotificationNotFound = errors.NewNotFoundError("Notification not found", errors.ErrCodeNotificationNotFound)
	ErrInvalidAudience      = errors.NewValidationError("invalid notification audience", errors.ErrCodeInvalidAudience)
)

type RepositoryAPI interface {
	Create(record *notificationDatamodel.Notification) error
	GetByID(id int64) (*notificationDatamodel.Notification, error)
	Update(record *notificationDatamodel.Notification) error
	Delete(id int64) error
	ListForAudience(audiences ...string) ([]*notificationDatamodel.Notification, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(dto NewNotificationDTO) (*Notification, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	audience, ok := NormalizeAudience(dto.ForWhom)
	if !ok {
		return nil, ErrInvalidAudience
	}

	record := &notificationDatamodel.Notification{
		Message: dto.Message,
		ForWhom: audience,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create notification", "error", err)
		return nil, err
	}

	s.logger.Info("notification created", "notification_id", record.ID, "for_whom", audience)
	return FromDataModel(record), nil
}

func (s *Service) Update(dto UpdateNotificationDTO) (*Notification, error) {
	if dto.NotificationID == 0 {
		return nil, errors.NewValidationError("notificationId is required", errors.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetByID(dto.NotificationID)
	if err != nil {
		return nil, ErrNotificationNotFound
	}

	if dto.Message != nil {
		record.Message = *dto.Message
	}
	if dto.ForWhom != nil {
		audience, ok := NormalizeAudience(*dto.ForWhom)
		if !ok {
			return nil, ErrInvalidAudience
		}
		record.ForWhom = audience
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update notification", "error", err, "notification_id", record.ID)
		return nil, err
	}

	s.logger.Info("notification updated", "notification_id", record.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(notificationID int64) error {
	if _, err := s.repo.GetByID(notificationID); err != nil {
		return ErrNotificationNotFound
	}

	if err := s.repo.Delete(notificationID); err != nil {
		s.logger.Error("failed to delete notification", "error", err, "notification_id", notificationID)
		return err
	}

	s.logger.Info("notification deleted", "notification_id", notificationID)
	return nil
}

// ListForEmployees returns the feed visible to employees: ALL plus EMPLOYEE.
func (s *Service) ListForEmployees() ([]*Notification, error) {
	records, err := s.repo.ListForAudience(AudienceAll, AudienceEmployee)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err)
		return nil, err
	}
	return FromDataModels(records), nil
}

// ListForAdmins returns the feed visible to admins: ALL plus ADMIN.
func (s *Service) ListForAdmins() ([]*Notification, error) {
	records, err := s.repo.ListForAudience(AudienceAll, AudienceAdmin)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err)
		return nil, err
	}
	return FromDataModels(records), nil
}

// HandleLeaveStatusChanged records a broadcast notification for employees
// whenever a leave request is approved or rejected.
func (s *Service) HandleLeaveStatusChanged(ctx context.Context, event events.Event) error {
	statusEvent, ok := event.(*events.LeaveStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	record := &notificationDatamodel.Notification{
		Message: fmt.Sprintf("Leave request #%d has been %s", statusEvent.LeaveID, statusEvent.Status),
		ForWhom: AudienceEmployee,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to record leave notification",
			"error", err,
			"leave_id", statusEvent.LeaveID)
		return err
	}

	s.logger.Info("leave notification recorded",
		"notification_id", record.ID,
		"leave_id", statusEvent.LeaveID,
		"status", statusEvent.Status)
	return nil
}
