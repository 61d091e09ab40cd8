package notifier

import (
	"context"
	"time"
)

// Notifier receives the outcome of a report run. Notification failures are
// warnings for the caller, never fatal.
type Notifier interface {
	NotifyRun(ctx context.Context, container string, groups, excess, writeFails int, duration time.Duration) error
	NotifyError(ctx context.Context, container string, runErr error) error
}
