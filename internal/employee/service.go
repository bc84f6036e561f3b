package employee

import (
	"context"
	"log/slog"

	errors "office-management/internal"
	"office-management/internal/attendance"
	"office-management/internal/auth"
	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	leaveDatamodel "office-management/internal/core/datamodel/leave"
	notificationDatamodel "office-management/internal/core/datamodel/notification"
	payrollDatamodel "office-management/internal/core/datamodel/payroll"
	taskDatamodel "office-management/internal/core/datamodel/task"
	"office-management/internal/leave"
	"office-management/internal/notification"
	"office-management/internal/payroll"
	"office-management/internal/task"
)

var (
	ErrEmployeeNotFound = errors.NewNotFoundError("Employee not found", errors.ErrCodeEmployeeNotFound)
	ErrDuplicateEmail   = errors.NewConflictError("an account with this email already exists", errors.ErrCodeDuplicateEmail)
	ErrNotSelf          = errors.NewForbiddenError("employees may only update their own record", errors.ErrCodeUnauthorizedAccess)
)

type RepositoryAPI interface {
	Create(record *employeeDatamodel.Employee) error
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	EmailExists(email string, excludeID int64) (bool, error)
	Update(record *employeeDatamodel.Employee) error
	DeleteCascade(id int64) error
	ListAll() ([]*employeeDatamodel.Employee, error)
}

// Readers pull the per-employee slices for the info and listing aggregates.
// They are satisfied by the other domains' repositories.
type AttendanceReader interface {
	ListByEmployee(employeeID int64) ([]*attendanceDatamodel.Attendance, error)
}

type LeaveReader interface {
	ListByEmployee(employeeID int64) ([]*leaveDatamodel.Leave, error)
}

type PayrollReader interface {
	ListByEmployee(employeeID int64) ([]*payrollDatamodel.Payroll, error)
}

type TaskReader interface {
	ListByEmployee(employeeID int64) ([]*taskDatamodel.Task, error)
	AssigneeIDs(taskID int64) ([]int64, error)
	EmployeeEmails(employeeIDs []int64) ([]string, error)
}

type NotificationReader interface {
	ListForAudience(audiences ...string) ([]*notificationDatamodel.Notification, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo          RepositoryAPI
	attendance    AttendanceReader
	leaves        LeaveReader
	payrolls      PayrollReader
	tasks         TaskReader
	notifications NotificationReader
	images        ImageUploader
	hasher        PasswordHasher
	logger        *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	attendanceReader AttendanceReader,
	leaveReader LeaveReader,
	payrollReader PayrollReader,
	taskReader TaskReader,
	notificationReader NotificationReader,
	images ImageUploader,
	hasher PasswordHasher,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		attendance:    attendanceReader,
		leaves:        leaveReader,
		payrolls:      payrollReader,
		tasks:         taskReader,
		notifications: notificationReader,
		images:        images,
		hasher:        hasher,
		logger:        logger,
	}
}

// Register creates an employee account. The email must be unique across
// employees; a duplicate is a conflict, not a validation failure.
func (s *Service) Register(ctx context.Context, dto RegisterEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailExists(dto.Email, 0)
	if err != nil {
		s.logger.Error("failed to check email", "error", err)
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	record := &employeeDatamodel.Employee{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: hash,
		Position:     dto.Position,
		Department:   dto.Department,
		Phone:        dto.Phone,
		Address:      dto.Address,
		Salary:       dto.Salary,
		IsActive:     true,
	}
	if dto.DateOfJoining != "" {
		joined, appErr := parseDate(dto.DateOfJoining)
		if appErr != nil {
			return nil, appErr
		}
		record.DateOfJoining = joined
	}
	if dto.DateOfBirth != "" {
		born, appErr := parseDate(dto.DateOfBirth)
		if appErr != nil {
			return nil, appErr
		}
		record.DateOfBirth = born
	}

	if dto.Picture != nil {
		url, err := s.images.Upload(ctx, dto.Picture.Name, dto.Picture.Data)
		if err != nil {
			s.logger.Error("profile picture upload failed", "error", err)
			return nil, errors.NewExternalError("profile picture upload failed", errors.ErrCodeImageUploadFailed, err)
		}
		record.ProfilePicture = &url
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("employee registered", "employee_id", record.ID)
	return FromDataModel(record), nil
}

// Update applies a partial update. Admins may update anyone; employees only
// themselves. The password is re-hashed only when a new one is provided.
func (s *Service) Update(ctx context.Context, caller *auth.User, dto UpdateEmployeeDTO) (*Employee, error) {
	targetID := dto.EmployeeID
	if caller.IsAdmin() {
		// an admin id is not an employee id; defaulting would hit an
		// unrelated row
		if targetID == 0 {
			return nil, errors.NewValidationError("employeeId is required", errors.ErrCodeValidationFailed)
		}
	} else {
		if targetID == 0 {
			targetID = caller.ID
		}
		if targetID != caller.ID {
			return nil, ErrNotSelf
		}
	}

	record, err := s.repo.GetByID(targetID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	if dto.Email != nil && *dto.Email != record.Email {
		taken, err := s.repo.EmailExists(*dto.Email, record.ID)
		if err != nil {
			s.logger.Error("failed to check email", "error", err)
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateEmail
		}
		record.Email = *dto.Email
	}

	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, err
		}
		record.PasswordHash = hash
	}
	if dto.Position != nil {
		record.Position = *dto.Position
	}
	if dto.Department != nil {
		record.Department = *dto.Department
	}
	if dto.Phone != nil {
		record.Phone = *dto.Phone
	}
	if dto.Address != nil {
		record.Address = *dto.Address
	}
	if dto.DateOfJoining != nil {
		joined, appErr := parseDate(*dto.DateOfJoining)
		if appErr != nil {
			return nil, appErr
		}
		record.DateOfJoining = joined
	}
	if dto.DateOfBirth != nil {
		born, appErr := parseDate(*dto.DateOfBirth)
		if appErr != nil {
			return nil, appErr
		}
		record.DateOfBirth = born
	}
	if dto.Salary != nil {
		if *dto.Salary < 0 {
			return nil, errors.NewValidationError("salary must not be negative", errors.ErrCodeValidationFailed)
		}
		record.Salary = *dto.Salary
	}
	if dto.IsActive != nil {
		record.IsActive = *dto.IsActive
	}

	if dto.Picture != nil {
		url, err := s.images.Upload(ctx, dto.Picture.Name, dto.Picture.Data)
		if err != nil {
			s.logger.Error("profile picture upload failed", "error", err)
			return nil, errors.NewExternalError("profile picture upload failed", errors.ErrCodeImageUploadFailed, err)
		}
		record.ProfilePicture = &url
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", record.ID)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", record.ID)
	return FromDataModel(record), nil
}

// Delete removes an employee and everything owned by them.
func (s *Service) Delete(employeeID int64) error {
	if _, err := s.repo.GetByID(employeeID); err != nil {
		return ErrEmployeeNotFound
	}

	if err := s.repo.DeleteCascade(employeeID); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", employeeID)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", employeeID)
	return nil
}

// Info assembles the self-service view: the employee plus their attendance,
// leaves, payrolls, assigned tasks, and the notification feed for their role.
func (s *Service) Info(employeeID int64) (*Info, error) {
	record, err := s.repo.GetByID(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	attendanceRecords, err := s.attendance.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to load attendance", "error", err, "employee_id", employeeID)
		return nil, err
	}
	leaveRecords, err := s.leaves.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to load leaves", "error", err, "employee_id", employeeID)
		return nil, err
	}
	payrollRecords, err := s.payrolls.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to load payrolls", "error", err, "employee_id", employeeID)
		return nil, err
	}
	tasks, err := s.assignedTasks(employeeID)
	if err != nil {
		return nil, err
	}
	notificationRecords, err := s.notifications.ListForAudience(notification.AudienceAll, notification.AudienceEmployee)
	if err != nil {
		s.logger.Error("failed to load notifications", "error", err, "employee_id", employeeID)
		return nil, err
	}

	return &Info{
		Employee:      FromDataModel(record),
		Attendance:    attendance.FromDataModels(attendanceRecords),
		Leaves:        leave.FromDataModels(leaveRecords),
		Payrolls:      payroll.FromDataModels(payrollRecords),
		Tasks:         tasks,
		Notifications: notification.FromDataModels(notificationRecords),
	}, nil
}

// All lists every employee with their attendance nested (admin view).
func (s *Service) All() ([]*WithAttendance, error) {
	records, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}

	out := make([]*WithAttendance, 0, len(records))
	for _, record := range records {
		attendanceRecords, err := s.attendance.ListByEmployee(record.ID)
		if err != nil {
			s.logger.Error("failed to load attendance", "error", err, "employee_id", record.ID)
			return nil, err
		}
		out = append(out, &WithAttendance{
			Employee:   *FromDataModel(record),
			Attendance: attendance.FromDataModels(attendanceRecords),
		})
	}
	return out, nil
}

func (s *Service) assignedTasks(employeeID int64) ([]*task.Task, error) {
	records, err := s.tasks.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to load tasks", "error", err, "employee_id", employeeID)
		return nil, err
	}

	out := make([]*task.Task, 0, len(records))
	for _, record := range records {
		ids, err := s.tasks.AssigneeIDs(record.ID)
		if err != nil {
			s.logger.Error("failed to load assignees", "error", err, "task_id", record.ID)
			return nil, err
		}
		emails, err := s.tasks.EmployeeEmails(ids)
		if err != nil {
			s.logger.Error("failed to resolve assignee emails", "error", err, "task_id", record.ID)
			return nil, err
		}
		out = append(out, task.FromDataModel(record, ids, emails))
	}
	return out, nil
}
