package presence

import (
	"context"
	"time"
)

// PresenceService derives daily attendance from the leave request set
type PresenceService interface {
	// GetSnapshot computes who is present and absent on the reference date.
	GetSnapshot(ctx context.Context, date time.Time) (Snapshot, error)
}
