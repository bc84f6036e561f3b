package payroll

import (
	"time"

	payrollDatamodel "office-management/internal/core/datamodel/payroll"
)

type Payroll struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	BasicPay   float64   `json:"basicPay"`
	Bonus      float64   `json:"bonus"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NetPay is always derived on the server; client-supplied values are ignored.
func NetPay(basicPay, bonus, deductions float64) float64 {
	return basicPay + bonus - deductions
}

func FromDataModel(p *payrollDatamodel.Payroll) *Payroll {
	return &Payroll{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		Year:       p.Year,
		BasicPay:   p.BasicPay,
		Bonus:      p.Bonus,
		Deductions: p.Deductions,
		NetPay:     p.NetPay,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromDataModels(records []*payrollDatamodel.Payroll) []*Payroll {
	out := make([]*Payroll, 0, len(records))
	for _, r := range records {
		out = append(out, FromDataModel(r))
	}
	return out
}
