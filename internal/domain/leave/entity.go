package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)

// AllLeaveTypes returns every recognized leave type.
func AllLeaveTypes() []LeaveType {
	return []LeaveType{
		LeaveTypeAnnual,
		LeaveTypeSick,
		LeaveTypeMaternity,
		LeaveTypePersonal,
		LeaveTypeEmergency,
		LeaveTypeUnpaid,
	}
}

// ValidLeaveType reports whether t is one of the enumerated kinds.
func ValidLeaveType(t LeaveType) bool {
	for _, known := range AllLeaveTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable label used in notification messages.
func (t LeaveType) Label() string {
	switch t {
	case LeaveTypeAnnual:
		return "Annual leave"
	case LeaveTypeSick:
		return "Sick leave"
	case LeaveTypeMaternity:
		return "Maternity leave"
	case LeaveTypePersonal:
		return "Personal leave"
	case LeaveTypeEmergency:
		return "Emergency leave"
	case LeaveTypeUnpaid:
		return "Unpaid leave"
	default:
		return string(t)
	}
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// ValidLeaveStatus reports whether s is one of the lifecycle statuses.
func ValidLeaveStatus(s LeaveStatus) bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID     string
	UserID string

	Type      LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status     LeaveStatus
	Comment    *string
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined requester attributes (for responses)
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

// Duration returns the inclusive day count of the request.
func (r LeaveRequest) Duration() int {
	return DurationDays(r.StartDate, r.EndDate)
}

// DurationDays computes the inclusive whole-day count between two dates.
// Both endpoints count as leave days; time-of-day is ignored.
func DurationDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// Covers reports whether date falls inside the request's inclusive range,
// compared at day granularity.
func (r LeaveRequest) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}
