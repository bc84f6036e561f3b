package payroll

import (
	"log/slog"

	errors "office-management/internal"
	payrollDatamodel "office-management/internal/core/datamodel/payroll"
)

var (
	ErrPayrollNotFound  = errors.NewNotFoundError("Payroll record not found", errors.ErrCodePayrollNotFound)
	ErrEmployeeNotFound = errors.NewNotFoundError("Employee not found", errors.ErrCodeEmployeeNotFound)
)

type RepositoryAPI interface {
	Create(record *payrollDatamodel.Payroll) error
	GetByID(id int64) (*payrollDatamodel.Payroll, error)
	Update(record *payrollDatamodel.Payroll) error
	Delete(id int64) error
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

// Create records a payroll entry. Net pay is derived from the pay components
// here, regardless of anything the client sends.
func (s *Service) Create(dto NewPayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmployeeExists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	record := &payrollDatamodel.Payroll{
		EmployeeID: dto.EmployeeID,
		Month:      dto.Month,
		Year:       dto.Year,
		BasicPay:   dto.BasicPay,
		Bonus:      dto.Bonus,
		Deductions: dto.Deductions,
		NetPay:     NetPay(dto.BasicPay, dto.Bonus, dto.Deductions),
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create payroll record", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("payroll created",
		"payroll_id", record.ID,
		"employee_id", dto.EmployeeID,
		"month", dto.Month,
		"year", dto.Year)

	return FromDataModel(record), nil
}

// Update applies the provided fields and recomputes net pay from the merged
// components.
func (s *Service) Update(dto UpdatePayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(dto.PayrollID)
	if err != nil {
		return nil, ErrPayrollNotFound
	}

	if dto.Month != nil {
		record.Month = *dto.Month
	}
	if dto.Year != nil {
		record.Year = *dto.Year
	}
	if dto.BasicPay != nil {
		record.BasicPay = *dto.BasicPay
	}
	if dto.Bonus != nil {
		record.Bonus = *dto.Bonus
	}
	if dto.Deductions != nil {
		record.Deductions = *dto.Deductions
	}
	record.NetPay = NetPay(record.BasicPay, record.Bonus, record.Deductions)

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update payroll record", "error", err, "payroll_id", record.ID)
		return nil, err
	}

	s.logger.Info("payroll updated", "payroll_id", record.ID, "net_pay", record.NetPay)
	return FromDataModel(record), nil
}

func (s *Service) Delete(payrollID int64) error {
	if _, err := s.repo.GetByID(payrollID); err != nil {
		return ErrPayrollNotFound
	}

	if err := s.repo.Delete(payrollID); err != nil {
		s.logger.Error("failed to delete payroll record", "error", err, "payroll_id", payrollID)
		return err
	}

	s.logger.Info("payroll deleted", "payroll_id", payrollID)
	return nil
}
