package postgres

import (
	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	leaveDatamodel "office-management/internal/core/datamodel/leave"
	payrollDatamodel "office-management/internal/core/datamodel/payroll"
	taskDatamodel "office-management/internal/core/datamodel/task"

	"gorm.io/gorm"
)

// EmployeeRepository implements employee.RepositoryAPI using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(record *employeeDatamodel.Employee) error {
	return r.db.Create(record).Error
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var record employeeDatamodel.Employee
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *EmployeeRepository) EmailExists(email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&employeeDatamodel.Employee{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Update(record *employeeDatamodel.Employee) error {
	return r.db.Save(record).Error
}

// DeleteCascade removes the employee together with every row they own:
// attendance, leaves, payrolls, and task assignments.
func (r *EmployeeRepository) DeleteCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).
			Delete(&attendanceDatamodel.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).
			Delete(&leaveDatamodel.Leave{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).
			Delete(&payrollDatamodel.Payroll{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).
			Delete(&taskDatamodel.TaskAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
	})
}

func (r *EmployeeRepository) ListAll() ([]*employeeDatamodel.Employee, error) {
	var records []*employeeDatamodel.Employee
	err := r.db.Order("id").Find(&records).Error
	return records, err
}
