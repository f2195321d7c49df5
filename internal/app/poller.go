package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/forgeline/forgetop/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes server status
// at a fixed cadence, backing off exponentially while the server is
// unreachable. It returns immediately.
func StartPoller(ctx context.Context, dispatcher *state.Dispatcher, store *state.Store, interval time.Duration, log logrus.FieldLogger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := dispatcher.RefreshStatus(ctx); err != nil {
				failures++
				log.WithError(err).WithField("failures", failures).Debug("status poll failed")
			} else {
				failures = 0
			}

			wait := calculateBackoff(failures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff. Zero failures returns the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
