package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange      = errors.New("start date must be before or equal to end date")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrNotRequestOwner       = errors.New("only the requesting employee can cancel a request")
)
