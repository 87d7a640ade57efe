package leave

import (
	"time"

	"github.com/leavetrack/leave-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// CreateLeaveRequestRequest represents an employee's leave submission.
// UserID is taken from the access token, never from the request body.
type CreateLeaveRequestRequest struct {
	UserID    string `json:"-"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidLeaveType(LeaveType(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of annual, sick, maternity, personal, emergency, unpaid"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be before or equal to end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveRequestRequest represents an admin approval
type ApproveRequestRequest struct {
	RequestID  string `json:"-"`
	ApproverID string `json:"-"`
	Comment    string `json:"comment"`
}

// RejectRequestRequest represents an admin rejection
type RejectRequestRequest struct {
	RequestID  string `json:"-"`
	ApproverID string `json:"-"`
	Comment    string `json:"comment"`
}

// StatusUpdate carries the fields written during a status transition
type StatusUpdate struct {
	ID         string
	Status     LeaveStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	Comment    *string
}

// LeaveRequestFilter is a pure conjunction of independent predicates:
// search AND status AND department. Empty fields match everything.
type LeaveRequestFilter struct {
	Search     string // case-insensitive substring over requester name and department
	Status     string
	Department string // case-insensitive exact match
	Limit      int
	Offset     int
}

func (f LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" && !ValidLeaveStatus(LeaveStatus(f.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, approved, rejected, cancelled"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

// LeaveRequestResponse represents a leave request in API responses
type LeaveRequestResponse struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Type       LeaveType   `json:"type"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Duration   int         `json:"duration"`
	Reason     string      `json:"reason,omitempty"`
	Status     LeaveStatus `json:"status"`
	Comment    *string     `json:"comment,omitempty"`
	ApprovedBy *string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time  `json:"approved_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`

	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
	EmployeePosition   *string `json:"employee_position,omitempty"`
}

// ListLeaveRequestResponse is the paginated list shape
type ListLeaveRequestResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int64                  `json:"total"`
}

// ToResponse converts a LeaveRequest entity to its API shape
func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		Type:               r.Type,
		StartDate:          r.StartDate.Format("2006-01-02"),
		EndDate:            r.EndDate.Format("2006-01-02"),
		Duration:           r.Duration(),
		Reason:             r.Reason,
		Status:             r.Status,
		Comment:            r.Comment,
		ApprovedBy:         r.ApprovedBy,
		ApprovedAt:         r.ApprovedAt,
		CreatedAt:          r.CreatedAt,
		EmployeeName:       r.EmployeeName,
		EmployeeDepartment: r.EmployeeDepartment,
		EmployeePosition:   r.EmployeePosition,
	}
}
