package payroll_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"office-management/internal/payroll"

	payrollDatamodel "office-management/internal/core/datamodel/payroll"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPayrollService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Payroll Service Suite")
}

// MockRepository implements payroll.RepositoryAPI for testing
type MockRepository struct {
	payrolls   map[int64]*payrollDatamodel.Payroll
	employees  map[int64]bool
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		payrolls:  make(map[int64]*payrollDatamodel.Payroll),
		employees: map[int64]bool{1: true},
		nextID:    1,
	}
}

func (m *MockRepository) SetShouldFail(fail bool, err error) {
	m.shouldFail = fail
	m.failError = err
}

func (m *MockRepository) Create(record *payrollDatamodel.Payroll) error {
	if m.shouldFail {
		return m.failError
	}
	record.ID = m.nextID
	m.nextID++
	m.payrolls[record.ID] = record
	return nil
}

func (m *MockRepository) GetByID(id int64) (*payrollDatamodel.Payroll, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	record, ok := m.payrolls[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return record, nil
}

func (m *MockRepository) Update(record *payrollDatamodel.Payroll) error {
	if m.shouldFail {
		return m.failError
	}
	m.payrolls[record.ID] = record
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.payrolls, id)
	return nil
}

func (m *MockRepository) EmployeeExists(employeeID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	return m.employees[employeeID], nil
}

var _ = Describe("Payroll Service", func() {
	var (
		mockRepo *MockRepository
		service  *payroll.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = payroll.NewService(mockRepo, logger)
	})

	Describe("Create", func() {
		It("derives net pay from the components", func() {
			created, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 1,
				Month:      "August",
				Year:       2025,
				BasicPay:   5000,
				Bonus:      500,
				Deductions: 250,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.NetPay).To(Equal(5250.0))
			Expect(created.Month).To(Equal("August"))
		})

		It("rejects an unknown employee", func() {
			_, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 99,
				Month:      "August",
				Year:       2025,
				BasicPay:   5000,
			})
			Expect(err).To(Equal(payroll.ErrEmployeeNotFound))
		})

		It("rejects negative pay components", func() {
			_, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 1,
				Month:      "August",
				Year:       2025,
				BasicPay:   -100,
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing month", func() {
			_, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 1,
				Year:       2025,
				BasicPay:   5000,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var payrollID int64

		BeforeEach(func() {
			created, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 1,
				Month:      "August",
				Year:       2025,
				BasicPay:   5000,
				Bonus:      500,
				Deductions: 250,
			})
			Expect(err).NotTo(HaveOccurred())
			payrollID = created.ID
		})

		It("recomputes net pay after a partial update", func() {
			bonus := 1000.0
			updated, err := service.Update(payroll.UpdatePayrollDTO{
				PayrollID: payrollID,
				Bonus:     &bonus,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Bonus).To(Equal(1000.0))
			Expect(updated.BasicPay).To(Equal(5000.0))
			Expect(updated.NetPay).To(Equal(5750.0))
		})

		It("returns not found for a missing record", func() {
			bonus := 1000.0
			_, err := service.Update(payroll.UpdatePayrollDTO{
				PayrollID: 999,
				Bonus:     &bonus,
			})
			Expect(err).To(Equal(payroll.ErrPayrollNotFound))
		})

		It("rejects a negative deduction", func() {
			deductions := -1.0
			_, err := service.Update(payroll.UpdatePayrollDTO{
				PayrollID:  payrollID,
				Deductions: &deductions,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		It("removes the record", func() {
			created, err := service.Create(payroll.NewPayrollDTO{
				EmployeeID: 1,
				Month:      "August",
				Year:       2025,
				BasicPay:   5000,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(created.ID)).To(Succeed())
			_, err = mockRepo.GetByID(created.ID)
			Expect(err).To(HaveOccurred())
		})

		It("returns not found for a missing record", func() {
			Expect(service.Delete(999)).To(Equal(payroll.ErrPayrollNotFound))
		})
	})

	Describe("NetPay", func() {
		It("is basic pay plus bonus minus deductions", func() {
			Expect(payroll.NetPay(1000, 200, 300)).To(Equal(900.0))
		})
	})
})
