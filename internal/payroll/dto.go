package payroll

import (
	errors "office-management/internal"
	"office-management/internal/core/common/validation"
)

type NewPayrollDTO struct {
	EmployeeID int64   `json:"employeeId"`
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	BasicPay   float64 `json:"basicPay"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
}

func (d NewPayrollDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("employeeId", d.EmployeeID).Required()
	validator.Field("month", d.Month).Required()
	validator.Field("year", d.Year).Required()
	validator.Field("basicPay", d.BasicPay).NonNegative()
	validator.Field("bonus", d.Bonus).NonNegative()
	validator.Field("deductions", d.Deductions).NonNegative()

	return validator.Validate()
}

// UpdatePayrollDTO updates pay components; netPay is recomputed from the
// merged record, never taken from the request.
type UpdatePayrollDTO struct {
	PayrollID  int64    `json:"payrollId"`
	Month      *string  `json:"month,omitempty"`
	Year       *int     `json:"year,omitempty"`
	BasicPay   *float64 `json:"basicPay,omitempty"`
	Bonus      *float64 `json:"bonus,omitempty"`
	Deductions *float64 `json:"deductions,omitempty"`
}

func (d UpdatePayrollDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("payrollId", d.PayrollID).Required()
	if d.BasicPay != nil {
		validator.Field("basicPay", *d.BasicPay).NonNegative()
	}
	if d.Bonus != nil {
		validator.Field("bonus", *d.Bonus).NonNegative()
	}
	if d.Deductions != nil {
		validator.Field("deductions", *d.Deductions).NonNegative()
	}

	return validator.Validate()
}
