package tempcred

import (
	"context"
	"time"
)

type cleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// Reaper periodically removes expired temporary credentials.
type Reaper struct {
	svc      cleaner
	interval time.Duration
}

// NewReaper creates a reaper running svc.CleanupExpired every interval.
func NewReaper(svc cleaner, interval time.Duration) *Reaper {
	return &Reaper{svc: svc, interval: interval}
}

// Run reaps once immediately and then on every tick until ctx is done.
// Failures are logged by the service and retried on the next tick.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		_, _ = r.svc.CleanupExpired(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
