package attendance

import (
	"log/slog"
	"time"

	errors "office-management/internal"
	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
)

var (
	ErrAttendanceNotFound = errors.NewNotFoundError("Attendance record not found", errors.ErrCodeAttendanceNotFound)
	ErrEmployeeNotFound   = errors.NewNotFoundError("Employee not found", errors.ErrCodeEmployeeNotFound)
	ErrInvalidStatus      = errors.NewValidationError("invalid attendance status", errors.ErrCodeInvalidStatus)
)

type RepositoryAPI interface {
	Create(record *attendanceDatamodel.Attendance) error
	GetByID(id int64) (*attendanceDatamodel.Attendance, error)
	UpdateStatus(id int64, status string) error
	EmployeeExists(employeeID int64) (bool, error)
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

// Mark records an attendance marking for the given employee. Multiple
// markings per day are permitted; the data model keeps one row per event.
func (s *Service) Mark(dto MarkAttendanceDTO) (*Attendance, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := StatusPresent
	if dto.Status != "" {
		normalized, ok := NormalizeStatus(dto.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = normalized
	}

	exists, err := s.repo.EmployeeExists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	record := &attendanceDatamodel.Attendance{
		EmployeeID: dto.EmployeeID,
		Date:       time.Now(),
		Status:     status,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create attendance record", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("attendance marked",
		"attendance_id", record.ID,
		"employee_id", dto.EmployeeID,
		"status", status)

	return FromDataModel(record), nil
}

// MarkOwn records today's attendance for the calling employee. The owner id
// comes from the token, never from the request body.
func (s *Service) MarkOwn(employeeID int64, status string) (*Attendance, error) {
	normalized, ok := NormalizeStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	record := &attendanceDatamodel.Attendance{
		EmployeeID: employeeID,
		Date:       time.Now(),
		Status:     normalized,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create attendance record", "error", err, "employee_id", employeeID)
		return nil, err
	}

	s.logger.Info("attendance self-marked",
		"attendance_id", record.ID,
		"employee_id", employeeID,
		"status", normalized)

	return FromDataModel(record), nil
}

// UpdateStatus corrects an existing marking (admin path).
func (s *Service) UpdateStatus(dto UpdateAttendanceDTO) (*Attendance, error) {
	if dto.AttendanceID == 0 {
		return nil, errors.NewValidationError("attendanceId is required", errors.ErrCodeValidationFailed)
	}

	normalized, ok := NormalizeStatus(dto.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	record, err := s.repo.GetByID(dto.AttendanceID)
	if err != nil {
		return nil, ErrAttendanceNotFound
	}

	if err := s.repo.UpdateStatus(record.ID, normalized); err != nil {
		s.logger.Error("failed to update attendance status", "error", err, "attendance_id", record.ID)
		return nil, err
	}

	record.Status = normalized
	s.logger.Info("attendance updated", "attendance_id", record.ID, "status", normalized)
	return FromDataModel(record), nil
}

