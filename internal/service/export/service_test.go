package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/notification"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

type stubLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (s *stubLeaveRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (s *stubLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *stubLeaveRepo) GetByUserID(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.requests, int64(len(s.requests)), nil
}

func (s *stubLeaveRepo) UpdateStatus(ctx context.Context, upd leave.StatusUpdate, fromStatuses []leave.LeaveStatus) (int64, error) {
	return 0, nil
}

func (s *stubLeaveRepo) GetApprovedOverlapping(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type stubNotificationRepo struct {
	notifications []*notification.Notification
}

func (s *stubNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (s *stubNotificationRepo) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound
}

func (s *stubNotificationRepo) GetByUserID(ctx context.Context, userID string) ([]*notification.Notification, error) {
	var result []*notification.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (s *stubNotificationRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (s *stubNotificationRepo) MarkAsRead(ctx context.Context, id string, userID string) error {
	return nil
}

func (s *stubNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func (s *stubNotificationRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

type stubUserRepo struct {
	users []user.User
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) List(ctx context.Context) ([]user.User, error)       { return s.users, nil }
func (s *stubUserRepo) ListAdmins(ctx context.Context) ([]user.User, error) { return nil, nil }
func (s *stubUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error {
	return nil
}

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportLeaveRequests(t *testing.T) {
	t.Parallel()
	name := "Budi"
	department := "Engineering"
	reason := "family visit, then some rest"
	svc := NewExportService(&stubLeaveRepo{requests: []leave.LeaveRequest{
		{
			ID:                 "req-1",
			UserID:             "user-1",
			Type:               leave.LeaveTypeAnnual,
			StartDate:          time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2024, 7, 26, 0, 0, 0, 0, time.UTC),
			Reason:             reason,
			Status:             leave.LeaveStatusApproved,
			EmployeeName:       &name,
			EmployeeDepartment: &department,
		},
	}}, &stubNotificationRepo{}, &stubUserRepo{})

	result, err := svc.ExportLeaveRequests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "leave_requests.csv", result.Filename)

	records := parseCSV(t, result.Content)
	require.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])

	row := records[1]
	assert.Equal(t, "req-1", row[0])
	assert.Equal(t, "Budi", row[1])
	assert.Equal(t, "annual", row[3])
	assert.Equal(t, "2024-07-15", row[4])
	assert.Equal(t, "2024-07-26", row[5])
	assert.Equal(t, "12", row[6])
	assert.Equal(t, "approved", row[7])
	assert.Equal(t, reason, row[8])
}

func TestExportNotifications_ScopedToUser(t *testing.T) {
	t.Parallel()
	svc := NewExportService(&stubLeaveRepo{}, &stubNotificationRepo{notifications: []*notification.Notification{
		{ID: "n1", UserID: "user-1", Type: notification.TypeApproval, Title: "Leave request approved", CreatedAt: time.Now()},
		{ID: "n2", UserID: "user-2", Type: notification.TypeRejection, Title: "Leave request rejected", CreatedAt: time.Now()},
	}}, &stubUserRepo{})

	result, err := svc.ExportNotifications(context.Background(), "user-1")
	require.NoError(t, err)

	records := parseCSV(t, result.Content)
	require.Len(t, records, 2)
	assert.Equal(t, "n1", records[1][0])
}

func TestExportUsers(t *testing.T) {
	t.Parallel()
	svc := NewExportService(&stubLeaveRepo{}, &stubNotificationRepo{}, &stubUserRepo{users: []user.User{
		{ID: "u1", Email: "budi@example.com", Name: "Budi", Department: "Engineering", Position: "Engineer", Role: user.RoleEmployee},
	}})

	result, err := svc.ExportUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "users.csv", result.Filename)

	records := parseCSV(t, result.Content)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "email", "name", "department", "position", "role", "created_at"}, records[0])
	assert.Equal(t, "budi@example.com", records[1][1])
	assert.Equal(t, "employee", records[1][5])
}

func TestExport_EmptyDatasetStillHasHeader(t *testing.T) {
	t.Parallel()
	svc := NewExportService(&stubLeaveRepo{}, &stubNotificationRepo{}, &stubUserRepo{})

	result, err := svc.ExportLeaveRequests(context.Background())
	require.NoError(t, err)

	records := parseCSV(t, result.Content)
	require.Len(t, records, 1)
	assert.Equal(t, "id", records[0][0])
}
