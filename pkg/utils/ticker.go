package utils

import (
	"context"
	"time"
)

// NewTicker returns a channel ticking every interval until ctx is done.
// The channel is buffered and ticks are dropped, not queued, when the
// consumer lags.
func NewTicker(ctx context.Context, interval time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				select {
				case ch <- t:
				default:
				}
			}
		}
	}()
	return ch
}
