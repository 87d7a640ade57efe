package presence

import (
	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

// PresentEmployee is an employee with no approved leave covering the
// reference date
type PresentEmployee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// AbsentEmployee is an employee covered by an approved leave request on the
// reference date, annotated with the covering request
type AbsentEmployee struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	AvatarURL     *string         `json:"avatar_url,omitempty"`
	LeaveType     leave.LeaveType `json:"leave_type"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	DaysRemaining int             `json:"days_remaining"`
}

// Snapshot is the derived attendance state for a reference date. It is
// recomputed on demand from the leave request set, never persisted.
type Snapshot struct {
	Date    string            `json:"date"`
	Present []PresentEmployee `json:"present"`
	Absent  []AbsentEmployee  `json:"absent"`
}

func toPresent(u user.User) PresentEmployee {
	return PresentEmployee{
		ID:         u.ID,
		Name:       u.Name,
		Department: u.Department,
		Position:   u.Position,
		AvatarURL:  u.AvatarURL,
	}
}
