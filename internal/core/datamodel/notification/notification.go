package notification

import "time"

// Notifications are broadcast: visibility is decided at read time by the
// for_whom audience tag, not by per-recipient delivery rows.
type Notification struct {
	ID        int64     `gorm:"primaryKey"`
	Message   string    `gorm:"column:message;not null"`
	ForWhom   string    `gorm:"column:for_whom;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Notification) TableName() string {
	return "notifications"
}
