package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/presence"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

// Service loads the employee roster and the approved requests overlapping a
// date, then derives the presence partition. Nothing is cached or persisted;
// every snapshot is recomputed from the authoritative rows.
type Service struct {
	users    user.UserRepository
	requests leave.LeaveRequestRepository
}

func NewPresenceService(users user.UserRepository, requests leave.LeaveRequestRepository) *Service {
	return &Service{users: users, requests: requests}
}

func (s *Service) GetSnapshot(ctx context.Context, date time.Time) (presence.Snapshot, error) {
	employees, err := s.users.List(ctx)
	if err != nil {
		return presence.Snapshot{}, fmt.Errorf("failed to load employees: %w", err)
	}

	approved, err := s.requests.GetApprovedOverlapping(ctx, date)
	if err != nil {
		return presence.Snapshot{}, fmt.Errorf("failed to load approved leave requests: %w", err)
	}

	return presence.ComputePresence(date, employees, approved), nil
}
