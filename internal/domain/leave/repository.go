package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// UpdateStatus performs the status transition as a conditional update:
	// the row is changed only when its current status is in fromStatuses.
	// Returns the number of rows affected so callers can distinguish a lost
	// race from a missing row.
	UpdateStatus(ctx context.Context, upd StatusUpdate, fromStatuses []LeaveStatus) (int64, error)

	// GetApprovedOverlapping returns approved requests whose inclusive
	// [start_date, end_date] range contains date.
	GetApprovedOverlapping(ctx context.Context, date time.Time) ([]LeaveRequest, error)
}
