package postgres

import (
	employeeDatamodel "office-management/internal/core/datamodel/employee"
	leaveDatamodel "office-management/internal/core/datamodel/leave"

	"gorm.io/gorm"
)

// LeaveRepository implements leave.RepositoryAPI using GORM.
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(record *leaveDatamodel.Leave) error {
	return r.db.Create(record).Error
}

func (r *LeaveRepository) GetByID(id int64) (*leaveDatamodel.Leave, error) {
	var record leaveDatamodel.Leave
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *LeaveRepository) Update(record *leaveDatamodel.Leave) error {
	return r.db.Save(record).Error
}

func (r *LeaveRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&leaveDatamodel.Leave{}).Error
}

func (r *LeaveRepository) ListByEmployee(employeeID int64) ([]*leaveDatamodel.Leave, error) {
	var records []*leaveDatamodel.Leave
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&records).Error
	return records, err
}

func (r *LeaveRepository) ListAll() ([]*leaveDatamodel.Leave, error) {
	var records []*leaveDatamodel.Leave
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *LeaveRepository) EmployeeExists(employeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
