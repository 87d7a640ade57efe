package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leavetrack/leave-backend-go/internal/domain/notification"
	"github.com/leavetrack/leave-backend-go/internal/pkg/sse"
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
}

// NewNotificationService creates a notification service backed by the given
// repository and SSE hub.
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{repo: repo, hub: hub}
}

// Notify inserts a notification row and pushes it to the recipient's live
// subscribers. The insert is the committed effect; a failed insert creates
// nothing and raises no event.
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) (*notification.Notification, error) {
	if !notification.ValidNotificationType(req.Type) {
		return nil, notification.ErrInvalidNotificationType
	}

	n := &notification.Notification{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.hub.Publish(n.UserID, sse.Event{
		UserID: n.UserID,
		Event:  "notification",
		Data:   toResponse(n),
	})

	return n, nil
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// GetNotifications retrieves the user's notifications, newest first
func (s *service) GetNotifications(ctx context.Context, userID string) (*notification.NotificationListResponse, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	unreadCount, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = toResponse(n)
	}

	return &notification.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
		UnreadCount:   unreadCount,
	}, nil
}

// GetUnreadCount returns the count of unread notifications
func (s *service) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read. Marking an already-read
// notification is a no-op success.
func (s *service) MarkAsRead(ctx context.Context, userID string, notificationID string) error {
	if err := s.repo.MarkAsRead(ctx, notificationID, userID); err != nil {
		return err
	}

	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		// The update committed; the push is best-effort.
		return nil
	}
	s.hub.Publish(userID, sse.Event{
		UserID: userID,
		Event:  "notification_read",
		Data:   toResponse(n),
	})
	return nil
}

// MarkAllAsRead marks all of the user's unread notifications as read.
// Idempotent: a second call finds nothing unread and changes nothing.
func (s *service) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	s.hub.Publish(userID, sse.Event{
		UserID: userID,
		Event:  "notifications_read",
	})
	return nil
}

// Delete removes a notification
func (s *service) Delete(ctx context.Context, userID string, notificationID string) error {
	return s.repo.Delete(ctx, notificationID, userID)
}

// Subscribe creates an SSE subscription for a user
func (s *service) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(userID)

	out := make(chan notification.SSEEvent, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				resp, _ := event.Data.(notification.NotificationResponse)
				select {
				case out <- notification.SSEEvent{Event: event.Event, Data: resp}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
