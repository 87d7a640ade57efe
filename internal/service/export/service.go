package export

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/notification"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

// Dataset names accepted by the export endpoint
const (
	DatasetLeaveRequests = "leave_requests"
	DatasetNotifications = "notifications"
	DatasetUsers         = "users"
)

// Export is a serialized dataset ready to be sent as a CSV attachment
type Export struct {
	Filename string
	Content  []byte
}

// Service serializes stored records as CSV downloads
type Service struct {
	requests      leave.LeaveRequestRepository
	notifications notification.Repository
	users         user.UserRepository
}

func NewExportService(requests leave.LeaveRequestRepository, notifications notification.Repository, users user.UserRepository) *Service {
	return &Service{
		requests:      requests,
		notifications: notifications,
		users:         users,
	}
}

// ExportLeaveRequests serializes every leave request with joined requester
// attributes. Admin only; enforced by the handler layer.
func (s *Service) ExportLeaveRequests(ctx context.Context) (Export, error) {
	requests, _, err := s.requests.List(ctx, leave.LeaveRequestFilter{})
	if err != nil {
		return Export{}, fmt.Errorf("failed to load leave requests: %w", err)
	}

	headers := []string{"id", "employee_name", "department", "type", "start_date", "end_date", "duration_days", "status", "reason", "comment", "created_at"}
	rows := make([][]string, len(requests))
	for i, r := range requests {
		rows[i] = []string{
			r.ID,
			strOrEmpty(r.EmployeeName),
			strOrEmpty(r.EmployeeDepartment),
			string(r.Type),
			r.StartDate.Format("2006-01-02"),
			r.EndDate.Format("2006-01-02"),
			strconv.Itoa(r.Duration()),
			string(r.Status),
			r.Reason,
			strOrEmpty(r.Comment),
			r.CreatedAt.Format(time.RFC3339),
		}
	}

	return Export{Filename: "leave_requests.csv", Content: MarshalCSV(headers, rows)}, nil
}

// ExportNotifications serializes the calling user's notifications
func (s *Service) ExportNotifications(ctx context.Context, userID string) (Export, error) {
	notifications, err := s.notifications.GetByUserID(ctx, userID)
	if err != nil {
		return Export{}, fmt.Errorf("failed to load notifications: %w", err)
	}

	headers := []string{"id", "type", "title", "message", "read", "created_at"}
	rows := make([][]string, len(notifications))
	for i, n := range notifications {
		rows[i] = []string{
			n.ID,
			string(n.Type),
			n.Title,
			n.Message,
			strconv.FormatBool(n.IsRead),
			n.CreatedAt.Format(time.RFC3339),
		}
	}

	return Export{Filename: "notifications.csv", Content: MarshalCSV(headers, rows)}, nil
}

// ExportUsers serializes every user profile. Admin only; enforced by the
// handler layer.
func (s *Service) ExportUsers(ctx context.Context) (Export, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("failed to load users: %w", err)
	}

	headers := []string{"id", "email", "name", "department", "position", "role", "created_at"}
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			u.ID,
			u.Email,
			u.Name,
			u.Department,
			u.Position,
			string(u.Role),
			u.CreatedAt.Format(time.RFC3339),
		}
	}

	return Export{Filename: "users.csv", Content: MarshalCSV(headers, rows)}, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
