package postgres

import (
	"time"

	attendanceDatamodel "office-management/internal/core/datamodel/attendance"
	employeeDatamodel "office-management/internal/core/datamodel/employee"

	"gorm.io/gorm"
)

// AttendanceRepository implements attendance.RepositoryAPI using GORM.
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(record *attendanceDatamodel.Attendance) error {
	return r.db.Create(record).Error
}

func (r *AttendanceRepository) GetByID(id int64) (*attendanceDatamodel.Attendance, error) {
	var record attendanceDatamodel.Attendance
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&attendanceDatamodel.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *AttendanceRepository) ListByEmployee(employeeID int64) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) EmployeeExists(employeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
