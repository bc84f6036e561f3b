package postgres

import (
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	payrollDatamodel "office-management/internal/core/datamodel/payroll"

	"gorm.io/gorm"
)

// PayrollRepository implements payroll.RepositoryAPI using GORM.
type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) Create(record *payrollDatamodel.Payroll) error {
	return r.db.Create(record).Error
}

func (r *PayrollRepository) GetByID(id int64) (*payrollDatamodel.Payroll, error) {
	var record payrollDatamodel.Payroll
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PayrollRepository) Update(record *payrollDatamodel.Payroll) error {
	return r.db.Save(record).Error
}

func (r *PayrollRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&payrollDatamodel.Payroll{}).Error
}

func (r *PayrollRepository) ListByEmployee(employeeID int64) ([]*payrollDatamodel.Payroll, error) {
	var records []*payrollDatamodel.Payroll
	err := r.db.Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&records).Error
	return records, err
}

func (r *PayrollRepository) ListAll() ([]*payrollDatamodel.Payroll, error) {
	var records []*payrollDatamodel.Payroll
	err := r.db.Order("year DESC, month DESC").Find(&records).Error
	return records, err
}

func (r *PayrollRepository) EmployeeExists(employeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
