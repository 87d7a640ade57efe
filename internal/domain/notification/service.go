package notification

import "context"

// Service defines the notification delivery interface
type Service interface {
	// Notify inserts a notification and pushes it to live subscribers.
	// The insert is the authoritative effect; push delivery is best-effort.
	Notify(ctx context.Context, req CreateNotificationRequest) (*Notification, error)

	GetNotifications(ctx context.Context, userID string) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID string, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, notificationID string) error

	// Subscribe registers interest in the user's notification set. The
	// returned cleanup func must be called when the observing context ends.
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())
}
