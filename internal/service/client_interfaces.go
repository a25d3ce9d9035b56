package service

import (
	"context"
	"time"
)

// ClientRefreshJob runs a single permission token refresh at a scheduled
// time on a background goroutine.
type ClientRefreshJob interface {
	// Schedule replaces any pending refresh with one firing at at. A time in
	// the past fires immediately.
	Schedule(ctx context.Context, at time.Time)

	// Cancel drops the pending refresh without waiting for a running one.
	Cancel()

	// Stop cancels the pending refresh and blocks until the background
	// goroutine has exited. It must not be called from the refresh itself.
	Stop()
}
