// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// clock drives every wait and every "now" in this package.
var clock = clockwork.NewRealClock()

// Pause waits for d or until ctx is done, whichever comes first.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}

// SuggestedDelay spaces requests by how much of the rate limit window is left.
// With nothing remaining it waits out the window.
func SuggestedDelay(remaining int, resetIn time.Duration) time.Duration {
	switch {
	case remaining <= 0:
		return max(resetIn, 0)
	case remaining < 10:
		return 2 * time.Second
	case remaining < 30:
		return time.Second
	default:
		return 500 * time.Millisecond
	}
}

// SuggestedDelay applies the package SuggestedDelay to a detailed rate limit error,
// measuring the window from now to ResetAt. Other kinds yield 0.
func (e *Error) SuggestedDelay(now time.Time) time.Duration {
	if e.Kind != KindRateLimit {
		return 0
	}

	return SuggestedDelay(e.Remaining, time.Unix(e.ResetAt, 0).Sub(now))
}
