package notification

import (
	"strings"
	"time"

	notificationDatamodel "office-management/internal/core/datamodel/notification"
)

type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	ForWhom   string    `json:"forWhom"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Audience tags. ALL is visible to both roles; EMPLOYEE and ADMIN narrow the
// feed to one side.
const (
	AudienceAll      = "ALL"
	AudienceEmployee = "EMPLOYEE"
	AudienceAdmin    = "ADMIN"
)

func NormalizeAudience(s string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case AudienceAll, AudienceEmployee, AudienceAdmin:
		return normalized, true
	}
	return normalized, false
}

func FromDataModel(n *notificationDatamodel.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		Message:   n.Message,
		ForWhom:   n.ForWhom,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromDataModels(records []*notificationDatamodel.Notification) []*Notification {
	out := make([]*Notification, 0, len(records))
	for _, r := range records {
		out = append(out, FromDataModel(r))
	}
	return out
}
