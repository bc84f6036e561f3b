package postgres

import (
	"office-management/internal/auth"
	adminDatamodel "office-management/internal/core/datamodel/admin"
	employeeDatamodel "office-management/internal/core/datamodel/employee"

	"gorm.io/gorm"
)

// CredentialRepository implements auth.CredentialStore using GORM.
type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) auth.CredentialStore {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) GetAdminCredentials(email string) (int64, string, error) {
	var a adminDatamodel.Admin
	if err := r.db.Select("id", "password_hash").Where("email = ?", email).First(&a).Error; err != nil {
		return 0, "", err
	}
	return a.ID, a.PasswordHash, nil
}

func (r *CredentialRepository) GetEmployeeCredentials(email string) (int64, string, bool, error) {
	var e employeeDatamodel.Employee
	if err := r.db.Select("id", "password_hash", "is_active").Where("email = ?", email).First(&e).Error; err != nil {
		return 0, "", false, err
	}
	return e.ID, e.PasswordHash, e.IsActive, nil
}
