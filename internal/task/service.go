package task

import (
	"log/slog"

	errors "office-management/internal"
	taskDatamodel "office-management/internal/core/datamodel/task"
)

var (
	ErrTaskNotFound     = errors.NewNotFoundError("Task not found", errors.ErrCodeTaskNotFound)
	ErrEmployeeNotFound = errors.NewNotFoundError("Employee not found", errors.ErrCodeEmployeeNotFound)
	ErrInvalidStatus    = errors.NewValidationError("invalid task status", errors.ErrCodeInvalidStatus)
)

type RepositoryAPI interface {
	CreateWithAssignments(record *taskDatamodel.Task, employeeIDs []int64) error
	GetByID(id int64) (*taskDatamodel.Task, error)
	Update(record *taskDatamodel.Task) error
	UpdateWithAssignments(record *taskDatamodel.Task, employeeIDs []int64) error
	Delete(id int64) error
	AssigneeIDs(taskID int64) ([]int64, error)
	EmployeeEmails(employeeIDs []int64) ([]string, error)
	EmployeesExist(employeeIDs []int64) (bool, error)
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

// Create stores a task and its assignment rows in one transaction.
func (s *Service) Create(dto NewTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := StatusPending
	if dto.Status != "" {
		normalized, ok := NormalizeStatus(dto.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = normalized
	}

	record := &taskDatamodel.Task{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      status,
	}
	if dto.DueDate != "" {
		due, appErr := parseDate(dto.DueDate)
		if appErr != nil {
			return nil, appErr
		}
		record.DueDate = due
	}

	if len(dto.EmployeeIDs) > 0 {
		exist, err := s.repo.EmployeesExist(dto.EmployeeIDs)
		if err != nil {
			s.logger.Error("failed to check assignees", "error", err)
			return nil, err
		}
		if !exist {
			return nil, ErrEmployeeNotFound
		}
	}

	if err := s.repo.CreateWithAssignments(record, dto.EmployeeIDs); err != nil {
		s.logger.Error("failed to create task", "error", err, "title", dto.Title)
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", record.ID,
		"status", status,
		"assignees", len(dto.EmployeeIDs))

	return s.withAssignees(record, dto.EmployeeIDs)
}

// Update applies the provided fields; when employeeIds is present the whole
// assignment set is replaced together with the task row in one transaction.
func (s *Service) Update(dto UpdateTaskDTO) (*Task, error) {
	if dto.TaskID == 0 {
		return nil, errors.NewValidationError("taskId is required", errors.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetByID(dto.TaskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	if dto.Title != nil {
		record.Title = *dto.Title
	}
	if dto.Description != nil {
		record.Description = *dto.Description
	}
	if dto.Status != nil {
		normalized, ok := NormalizeStatus(*dto.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		record.Status = normalized
	}
	if dto.DueDate != nil {
		due, appErr := parseDate(*dto.DueDate)
		if appErr != nil {
			return nil, appErr
		}
		record.DueDate = due
	}

	if dto.EmployeeIDs != nil {
		if len(*dto.EmployeeIDs) > 0 {
			exist, err := s.repo.EmployeesExist(*dto.EmployeeIDs)
			if err != nil {
				s.logger.Error("failed to check assignees", "error", err)
				return nil, err
			}
			if !exist {
				return nil, ErrEmployeeNotFound
			}
		}
		if err := s.repo.UpdateWithAssignments(record, *dto.EmployeeIDs); err != nil {
			s.logger.Error("failed to update task", "error", err, "task_id", record.ID)
			return nil, err
		}
		s.logger.Info("task updated", "task_id", record.ID, "assignees", len(*dto.EmployeeIDs))
		return s.withAssignees(record, *dto.EmployeeIDs)
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", record.ID)
		return nil, err
	}

	assigneeIDs, err := s.repo.AssigneeIDs(record.ID)
	if err != nil {
		s.logger.Error("failed to load assignees", "error", err, "task_id", record.ID)
		return nil, err
	}

	s.logger.Info("task updated", "task_id", record.ID)
	return s.withAssignees(record, assigneeIDs)
}

// Delete removes a task; assignment rows cascade with it.
func (s *Service) Delete(taskID int64) error {
	if _, err := s.repo.GetByID(taskID); err != nil {
		return ErrTaskNotFound
	}

	if err := s.repo.Delete(taskID); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return err
	}

	s.logger.Info("task deleted", "task_id", taskID)
	return nil
}

func (s *Service) withAssignees(record *taskDatamodel.Task, employeeIDs []int64) (*Task, error) {
	emails, err := s.repo.EmployeeEmails(employeeIDs)
	if err != nil {
		s.logger.Error("failed to resolve assignee emails", "error", err, "task_id", record.ID)
		return nil, err
	}
	return FromDataModel(record, employeeIDs, emails), nil
}
