package leave

import (
	"context"
	"log/slog"

	errors "office-management/internal"
	leaveDatamodel "office-management/internal/core/datamodel/leave"
	"office-management/internal/core/events"
)

var (
	ErrLeaveNotFound    = errors.NewNotFoundError("Leave request not found", errors.ErrCodeLeaveNotFound)
	ErrEmployeeNotFound = errors.NewNotFoundError("Employee not found", errors.ErrCodeEmployeeNotFound)
	ErrNotOwner         = errors.NewForbiddenError("leave request belongs to another employee", errors.ErrCodeUnauthorizedAccess)
	ErrNotPending       = errors.NewValidationError("only pending leave requests can be modified", errors.ErrCodeCannotModifyLeave)
	ErrInvalidStatus    = errors.NewValidationError("invalid leave status", errors.ErrCodeInvalidStatus)
	ErrStatusRequired   = errors.NewValidationError("status is required", errors.ErrCodeValidationFailed)
)

type RepositoryAPI interface {
	Create(record *leaveDatamodel.Leave) error
	GetByID(id int64) (*leaveDatamodel.Leave, error)
	Update(record *leaveDatamodel.Leave) error
	Delete(id int64) error
	EmployeeExists(employeeID int64) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo     RepositoryAPI
	eventBus EventPublisher
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, eventBus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Create files a leave request for the calling employee. New requests always
// start PENDING; the owner id comes from the token.
func (s *Service) Create(employeeID int64, dto NewLeaveDTO) (*Leave, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	start, appErr := ParseDate(dto.StartDate)
	if appErr != nil {
		return nil, appErr
	}
	end, appErr := ParseDate(dto.EndDate)
	if appErr != nil {
		return nil, appErr
	}

	exists, err := s.repo.EmployeeExists(employeeID)
	if err != nil {
		s.logger.Error("failed to check employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	record := &leaveDatamodel.Leave{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     dto.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create leave request", "error", err, "employee_id", employeeID)
		return nil, err
	}

	s.logger.Info("leave request created",
		"leave_id", record.ID,
		"employee_id", employeeID,
		"duration_days", DurationDays(start, end))

	return FromDataModel(record), nil
}

// UpdateStatus transitions a leave request (admin path). Approvals and
// rejections publish an event so the notification feed picks them up.
func (s *Service) UpdateStatus(ctx context.Context, dto UpdateLeaveDTO) (*Leave, error) {
	if dto.LeaveID == 0 {
		return nil, errors.NewValidationError("leaveId is required", errors.ErrCodeValidationFailed)
	}
	if dto.Status == nil {
		return nil, ErrStatusRequired
	}

	status, ok := NormalizeStatus(*dto.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	record, err := s.repo.GetByID(dto.LeaveID)
	if err != nil {
		return nil, ErrLeaveNotFound
	}

	record.Status = status
	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update leave status", "error", err, "leave_id", record.ID)
		return nil, err
	}

	s.logger.Info("leave status updated", "leave_id", record.ID, "status", status)

	if status == StatusApproved || status == StatusRejected {
		event := events.NewLeaveStatusChangedEvent(record.ID, record.EmployeeID, status)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish leave status event", "error", err, "leave_id", record.ID)
		}
	}

	return FromDataModel(record), nil
}

// UpdateOwn edits the dates and reason of the caller's own request. Only
// PENDING requests may be edited; status cannot be changed on this path.
func (s *Service) UpdateOwn(employeeID int64, dto UpdateLeaveDTO) (*Leave, error) {
	if dto.LeaveID == 0 {
		return nil, errors.NewValidationError("leaveId is required", errors.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetByID(dto.LeaveID)
	if err != nil {
		return nil, ErrLeaveNotFound
	}
	if record.EmployeeID != employeeID {
		return nil, ErrNotOwner
	}
	if record.Status != StatusPending {
		return nil, ErrNotPending
	}

	if dto.StartDate != nil {
		start, appErr := ParseDate(*dto.StartDate)
		if appErr != nil {
			return nil, appErr
		}
		record.StartDate = start
	}
	if dto.EndDate != nil {
		end, appErr := ParseDate(*dto.EndDate)
		if appErr != nil {
			return nil, appErr
		}
		record.EndDate = end
	}
	if dto.Reason != nil {
		record.Reason = *dto.Reason
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update leave request", "error", err, "leave_id", record.ID)
		return nil, err
	}

	s.logger.Info("leave request updated", "leave_id", record.ID, "employee_id", employeeID)
	return FromDataModel(record), nil
}

// Delete withdraws the caller's own pending request.
func (s *Service) Delete(employeeID, leaveID int64) error {
	record, err := s.repo.GetByID(leaveID)
	if err != nil {
		return ErrLeaveNotFound
	}
	if record.EmployeeID != employeeID {
		return ErrNotOwner
	}
	if record.Status != StatusPending {
		return ErrNotPending
	}

	if err := s.repo.Delete(leaveID); err != nil {
		s.logger.Error("failed to delete leave request", "error", err, "leave_id", leaveID)
		return err
	}

	s.logger.Info("leave request deleted", "leave_id", leaveID, "employee_id", employeeID)
	return nil
}

