package notification

import "context"

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)

	// GetByUserID returns the user's notifications newest first.
	GetByUserID(ctx context.Context, userID string) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)

	// MarkAsRead transitions a single notification to read. Marking an
	// already-read row affects zero rows and is still a success.
	MarkAsRead(ctx context.Context, id string, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string, userID string) error
}
