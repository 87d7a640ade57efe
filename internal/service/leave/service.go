package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/notification"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

// Service drives the leave request lifecycle. Status transitions are
// enforced at the storage layer with conditional updates so concurrent
// approvers cannot both succeed.
type Service struct {
	requests leave.LeaveRequestRepository
	users    user.UserRepository
	notifier notification.Service

	// notifyAdminsOnSubmit raises request-type notifications to admins when
	// an employee submits. Observer behavior only; submission never fails
	// because of it.
	notifyAdminsOnSubmit bool
}

func NewLeaveService(requests leave.LeaveRequestRepository, users user.UserRepository, notifier notification.Service) *Service {
	return &Service{
		requests:             requests,
		users:                users,
		notifier:             notifier,
		notifyAdminsOnSubmit: true,
	}
}

func (s *Service) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	requester, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get requesting user: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if startDate.After(endDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		UserID:    requester.ID,
		Type:      leave.LeaveType(req.Type),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.LeaveStatusPending,
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if s.notifyAdminsOnSubmit {
		s.notifyAdmins(ctx, requester, created)
	}

	return leave.ToResponse(created), nil
}

// notifyAdmins raises request-type notifications to supervisory staff.
// Failures are logged, never propagated: the submission already committed.
func (s *Service) notifyAdmins(ctx context.Context, requester user.User, request leave.LeaveRequest) {
	admins, err := s.users.ListAdmins(ctx)
	if err != nil {
		slog.Warn("failed to list admins for submission notification", "error", err, "request_id", request.ID)
		return
	}

	for _, admin := range admins {
		if admin.ID == requester.ID {
			continue
		}
		_, err := s.notifier.Notify(ctx, notification.CreateNotificationRequest{
			UserID:  admin.ID,
			Type:    notification.TypeRequest,
			Title:   "New leave request",
			Message: fmt.Sprintf("%s submitted a %s request from %s to %s", requester.Name, request.Type.Label(), formatDate(request.StartDate), formatDate(request.EndDate)),
		})
		if err != nil {
			slog.Warn("failed to notify admin of submission", "error", err, "admin_id", admin.ID, "request_id", request.ID)
		}
	}
}

func (s *Service) ApproveLeaveRequest(ctx context.Context, req leave.ApproveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.resolveRequest(ctx, req.RequestID, req.ApproverID, req.Comment, leave.LeaveStatusApproved)
}

func (s *Service) RejectLeaveRequest(ctx context.Context, req leave.RejectRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.resolveRequest(ctx, req.RequestID, req.ApproverID, req.Comment, leave.LeaveStatusRejected)
}

// resolveRequest applies the pending → approved/rejected transition. The
// conditional update only touches rows still in pending; when two approvers
// race, the loser sees zero rows affected and gets ErrLeaveAlreadyProcessed.
func (s *Service) resolveRequest(ctx context.Context, requestID, approverID, comment string, target leave.LeaveStatus) (leave.LeaveRequestResponse, error) {
	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get approver: %w", err)
	}
	if !approver.CanApprove() {
		return leave.LeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	upd := leave.StatusUpdate{
		ID:         requestID,
		Status:     target,
		ApprovedBy: &approver.ID,
		ApprovedAt: &now,
	}
	if comment != "" {
		upd.Comment = &comment
	}

	affected, err := s.requests.UpdateStatus(ctx, upd, []leave.LeaveStatus{leave.LeaveStatusPending})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}
	if affected == 0 {
		// Row existed a moment ago, so a concurrent transition won the race.
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = target
	request.ApprovedBy = upd.ApprovedBy
	request.ApprovedAt = upd.ApprovedAt
	request.Comment = upd.Comment

	if err := s.notifyResolution(ctx, request, target); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("leave request %s but notification failed: %w", target, err)
	}

	return leave.ToResponse(request), nil
}

// notifyResolution creates exactly one notification for the requesting
// employee describing the outcome.
func (s *Service) notifyResolution(ctx context.Context, request leave.LeaveRequest, target leave.LeaveStatus) error {
	notifType := notification.TypeApproval
	title := "Leave request approved"
	verb := "approved"
	if target == leave.LeaveStatusRejected {
		notifType = notification.TypeRejection
		title = "Leave request rejected"
		verb = "rejected"
	}

	_, err := s.notifier.Notify(ctx, notification.CreateNotificationRequest{
		UserID:  request.UserID,
		Type:    notifType,
		Title:   title,
		Message: fmt.Sprintf("Your %s from %s to %s has been %s", request.Type.Label(), formatDate(request.StartDate), formatDate(request.EndDate), verb),
	})
	return err
}

func (s *Service) CancelLeaveRequest(ctx context.Context, requestID, actorID string) (leave.LeaveRequestResponse, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.UserID != actorID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
	}
	if request.Status != leave.LeaveStatusPending && request.Status != leave.LeaveStatusApproved {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	upd := leave.StatusUpdate{
		ID:     requestID,
		Status: leave.LeaveStatusCancelled,
	}
	affected, err := s.requests.UpdateStatus(ctx, upd, []leave.LeaveStatus{leave.LeaveStatusPending, leave.LeaveStatusApproved})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}
	if affected == 0 {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.LeaveStatusCancelled
	return leave.ToResponse(request), nil
}

func (s *Service) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(request), nil
}

func (s *Service) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests, total), nil
}

func (s *Service) ListMyLeaveRequests(ctx context.Context, userID string) (leave.ListLeaveRequestResponse, error) {
	requests, err := s.requests.GetByUserID(ctx, userID)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests, int64(len(requests))), nil
}

func toListResponse(requests []leave.LeaveRequest, total int64) leave.ListLeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = leave.ToResponse(r)
	}
	return leave.ListLeaveRequestResponse{Requests: responses, Total: total}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
