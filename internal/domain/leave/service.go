package leave

import "context"

// LeaveService drives the request lifecycle
type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, req ApproveRequestRequest) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, req RejectRequestRequest) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, requestID, actorID string) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, userID string) (ListLeaveRequestResponse, error)
}
