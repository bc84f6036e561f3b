package postgres

import (
	adminDatamodel "office-management/internal/core/datamodel/admin"

	"gorm.io/gorm"
)

// AdminRepository implements admin.RepositoryAPI using GORM.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(record *adminDatamodel.Admin) error {
	return r.db.Create(record).Error
}

func (r *AdminRepository) GetByID(id int64) (*adminDatamodel.Admin, error) {
	var record adminDatamodel.Admin
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AdminRepository) EmailExists(email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&adminDatamodel.Admin{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *AdminRepository) Update(record *adminDatamodel.Admin) error {
	return r.db.Save(record).Error
}

func (r *AdminRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&adminDatamodel.Admin{}).Error
}
