package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeRequest   NotificationType = "request"
	TypeApproval  NotificationType = "approval"
	TypeRejection NotificationType = "rejection"
	TypeReminder  NotificationType = "reminder"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeRequest,
		TypeApproval,
		TypeRejection,
		TypeReminder,
	}
}

// ValidNotificationType reports whether t is a known type.
func ValidNotificationType(t NotificationType) bool {
	for _, known := range AllNotificationTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Notification represents a notification entity
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
