// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"errors"
	"time"

	"github.com/anisan-cli/anikit/log"
	"github.com/anisan-cli/anikit/metrics"
)

// RetryPolicy controls how Retry reacts to rate and burst limiting.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt. 0 disables retrying.
	MaxRetries int
	// BaseDelay is the first computed delay.
	BaseDelay time.Duration
	// MaxDelay caps every computed delay.
	MaxDelay time.Duration
	// ExponentialBackoff doubles the computed delay after each retry.
	ExponentialBackoff bool
}

// DefaultRetryPolicy retries three times starting at one second, doubling up to thirty.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:         3,
		BaseDelay:          time.Second,
		MaxDelay:           30 * time.Second,
		ExponentialBackoff: true,
	}
}

func (p RetryPolicy) normalize() RetryPolicy {
	p.MaxRetries = max(p.MaxRetries, 0)
	p.BaseDelay = max(p.BaseDelay, 0)
	p.MaxDelay = max(p.MaxDelay, p.BaseDelay)
	return p
}

// Operation is one complete, re-invocable attempt, usually a Query plus decoding.
type Operation[T any] func(ctx context.Context) (T, error)

// Retry runs op until it succeeds, fails with an error that is not rate or burst limiting,
// or has been retried policy.MaxRetries times. op runs at most MaxRetries+1 times.
//
// The wait before a retry is the server's Retry-After for a detailed rate limit,
// twice the computed delay for a burst limit and the computed delay otherwise, all capped at MaxDelay
// except Retry-After. The computed delay starts at BaseDelay and doubles after every retry
// when ExponentialBackoff is set.
func Retry[T any](ctx context.Context, policy RetryPolicy, op Operation[T]) (T, error) {
	var zero T

	policy = policy.normalize()
	delay := policy.BaseDelay

	for attempts := 0; ; attempts++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) || !IsRetryable(apiErr) {
			return zero, err
		}

		if attempts >= policy.MaxRetries {
			// The server's current budget is unknown at this point; only Retry-After is still meaningful.
			if apiErr.Kind == KindRateLimit {
				return zero, NewRateLimitError(fallbackLimit, fallbackRemaining, fallbackReset, apiErr.RetryAfter)
			}
			return zero, err
		}

		wait := nextWait(apiErr, delay, policy.MaxDelay)
		log.Infof("%s, retrying in %s (attempt %d/%d)", apiErr.Kind, wait, attempts+1, policy.MaxRetries)
		metrics.ObserveRetry(apiErr.Kind.String(), wait)

		if err := Pause(ctx, wait); err != nil {
			return zero, networkError(err)
		}

		if policy.ExponentialBackoff {
			delay = min(delay*2, policy.MaxDelay)
		}
	}
}

func nextWait(err *Error, delay, ceiling time.Duration) time.Duration {
	switch err.Kind {
	case KindRateLimit:
		if err.RetryAfter > 0 {
			return time.Duration(err.RetryAfter) * time.Second
		}
		return min(delay, ceiling)
	case KindBurstLimit:
		return min(delay*2, ceiling)
	default:
		return min(delay, ceiling)
	}
}
