package admin

import (
	"context"
	"log/slog"

	errors "office-management/internal"
	adminDatamodel "office-management/internal/core/datamodel/admin"
	leaveDatamodel "office-management/internal/core/datamodel/leave"
	notificationDatamodel "office-management/internal/core/datamodel/notification"
	payrollDatamodel "office-management/internal/core/datamodel/payroll"
	taskDatamodel "office-management/internal/core/datamodel/task"
	"office-management/internal/employee"
	"office-management/internal/leave"
	"office-management/internal/notification"
	"office-management/internal/payroll"
	"office-management/internal/task"
)

var (
	ErrAdminNotFound  = errors.NewNotFoundError("Admin not found", errors.ErrCodeAdminNotFound)
	ErrDuplicateEmail = errors.NewConflictError("an account with this email already exists", errors.ErrCodeDuplicateEmail)
)

type RepositoryAPI interface {
	Create(record *adminDatamodel.Admin) error
	GetByID(id int64) (*adminDatamodel.Admin, error)
	EmailExists(email string, excludeID int64) (bool, error)
	Update(record *adminDatamodel.Admin) error
	Delete(id int64) error
}

// EmployeeDirectory exposes the employee listing for the dashboard; it is
// satisfied by the employee service.
type EmployeeDirectory interface {
	All() ([]*employee.WithAttendance, error)
}

type LeaveLister interface {
	ListAll() ([]*leaveDatamodel.Leave, error)
}

type PayrollLister interface {
	ListAll() ([]*payrollDatamodel.Payroll, error)
}

type TaskLister interface {
	ListAll() ([]*taskDatamodel.Task, error)
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
	employees     EmployeeDirectory
	leaves        LeaveLister
	payrolls      PayrollLister
	tasks         TaskLister
	notifications NotificationReader
	images        ImageUploader
	hasher        PasswordHasher
	logger        *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	employees EmployeeDirectory,
	leaves LeaveLister,
	payrolls PayrollLister,
	tasks TaskLister,
	notifications NotificationReader,
	images ImageUploader,
	hasher PasswordHasher,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		employees:     employees,
		leaves:        leaves,
		payrolls:      payrolls,
		tasks:         tasks,
		notifications: notifications,
		images:        images,
		hasher:        hasher,
		logger:        logger,
	}
}

// Register creates an admin account. The endpoint is public, matching the
// bootstrap flow of the console.
func (s *Service) Register(ctx context.Context, dto RegisterAdminDTO) (*Admin, error) {
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

	record := &adminDatamodel.Admin{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: hash,
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
		s.logger.Error("failed to create admin", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("admin registered", "admin_id", record.ID)
	return FromDataModel(record), nil
}

// Update applies a partial update to the calling admin's own account.
func (s *Service) Update(ctx context.Context, adminID int64, dto UpdateAdminDTO) (*Admin, error) {
	record, err := s.repo.GetByID(adminID)
	if err != nil {
		return nil, ErrAdminNotFound
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
	if dto.Picture != nil {
		url, err := s.images.Upload(ctx, dto.Picture.Name, dto.Picture.Data)
		if err != nil {
			s.logger.Error("profile picture upload failed", "error", err)
			return nil, errors.NewExternalError("profile picture upload failed", errors.ErrCodeImageUploadFailed, err)
		}
		record.ProfilePicture = &url
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update admin", "error", err, "admin_id", record.ID)
		return nil, err
	}

	s.logger.Info("admin updated", "admin_id", record.ID)
	return FromDataModel(record), nil
}

// Delete removes the calling admin's own account.
func (s *Service) Delete(adminID int64) error {
	if _, err := s.repo.GetByID(adminID); err != nil {
		return ErrAdminNotFound
	}

	if err := s.repo.Delete(adminID); err != nil {
		s.logger.Error("failed to delete admin", "error", err, "admin_id", adminID)
		return err
	}

	s.logger.Info("admin deleted", "admin_id", adminID)
	return nil
}

// Dashboard assembles the console landing aggregate for the calling admin.
func (s *Service) Dashboard(adminID int64) (*Dashboard, error) {
	record, err := s.repo.GetByID(adminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	notificationRecords, err := s.notifications.ListForAudience(notification.AudienceAll, notification.AudienceAdmin)
	if err != nil {
		s.logger.Error("failed to load notifications", "error", err)
		return nil, err
	}

	tasks, err := s.allTasks()
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.All()
	if err != nil {
		s.logger.Error("failed to load employees", "error", err)
		return nil, err
	}

	leaveRecords, err := s.leaves.ListAll()
	if err != nil {
		s.logger.Error("failed to load leaves", "error", err)
		return nil, err
	}

	payrolls, err := s.payrollSummaries(employees)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Admin:         FromDataModel(record),
		Notifications: notification.FromDataModels(notificationRecords),
		Tasks:         tasks,
		Employees:     employees,
		Leaves:        leave.FromDataModels(leaveRecords),
		Payrolls:      payrolls,
	}, nil
}

func (s *Service) allTasks() ([]*task.Task, error) {
	records, err := s.tasks.ListAll()
	if err != nil {
		s.logger.Error("failed to load tasks", "error", err)
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

// payrollSummaries joins payroll rows with the employee list already loaded
// for the dashboard, avoiding a second directory query.
func (s *Service) payrollSummaries(employees []*employee.WithAttendance) ([]*PayrollSummary, error) {
	records, err := s.payrolls.ListAll()
	if err != nil {
		s.logger.Error("failed to load payrolls", "error", err)
		return nil, err
	}

	type contact struct{ name, email string }
	directory := make(map[int64]contact, len(employees))
	for _, e := range employees {
		directory[e.ID] = contact{name: e.Name, email: e.Email}
	}

	out := make([]*PayrollSummary, 0, len(records))
	for _, record := range records {
		summary := &PayrollSummary{Payroll: *payroll.FromDataModel(record)}
		if c, ok := directory[record.EmployeeID]; ok {
			summary.EmployeeName = c.name
			summary.EmployeeEmail = c.email
		}
		out = append(out, summary)
	}
	return out, nil
}
