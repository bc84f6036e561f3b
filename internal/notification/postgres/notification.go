package postgres

import (
	notificationDatamodel "office-management/internal/core/datamodel/notification"

	"gorm.io/gorm"
)

// NotificationRepository implements notification.RepositoryAPI using GORM.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(record *notificationDatamodel.Notification) error {
	return r.db.Create(record).Error
}

func (r *NotificationRepository) GetByID(id int64) (*notificationDatamodel.Notification, error) {
	var record notificationDatamodel.Notification
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *NotificationRepository) Update(record *notificationDatamodel.Notification) error {
	return r.db.Save(record).Error
}

func (r *NotificationRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&notificationDatamodel.Notification{}).Error
}

func (r *NotificationRepository) ListForAudience(audiences ...string) ([]*notificationDatamodel.Notification, error) {
	var records []*notificationDatamodel.Notification
	err := r.db.Where("for_whom IN ?", audiences).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
