// Package services – expiry sweeper
//
// The sweeper periodically marks overdue active sessions as expired. It is
// purely housekeeping: the lazy read-time check in SessionService.loadActive
// remains the authority, and correctness never depends on the sweep running
// at all. Running it keeps the active-session index small and makes expiry
// visible in metrics without waiting for the next read.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StaleExpirer is the store operation the sweeper drives.
type StaleExpirer func(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)

// Sweeper runs the expiry sweep on a fixed interval.
type Sweeper struct {
	DB       *gorm.DB
	Expire   StaleExpirer
	Interval time.Duration

	// Now allows tests to pin the clock; defaults to time.Now.
	Now func() time.Time
}

// Run blocks, sweeping every Interval until ctx is canceled. A non-positive
// interval disables the sweeper immediately.
func (w *Sweeper) Run(ctx context.Context) {
	if w.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep performs one pass. Failures are logged and swallowed; the next tick
// simply tries again.
func (w *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()
	if w.Now != nil {
		now = w.Now().UTC()
	}
	n, err := w.Expire(ctx, w.DB, now)
	if err != nil {
		log.Warn().Err(err).Msg("session sweep failed")
		return
	}
	if n > 0 {
		sessionEvents.WithLabelValues("expired").Add(float64(n))
		log.Debug().Int64("sessions", n).Msg("session sweep expired stale sessions")
	}
}
