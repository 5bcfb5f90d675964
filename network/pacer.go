// Package network owns the HTTP plumbing shared by every AniList call.
package network

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// PacedTransport spaces outgoing requests so a process stays inside a per-minute budget.
// It waits on the request context, so cancellation interrupts the wait.
type PacedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewPacedTransport allows perMinute requests per minute with a burst of one tenth of that (at least 1).
// A perMinute of 0 or less never waits.
func NewPacedTransport(next http.RoundTripper, perMinute int) *PacedTransport {
	if perMinute <= 0 {
		return &PacedTransport{next: next, limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	return &PacedTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), max(perMinute/10, 1)),
	}
}

func (p *PacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := p.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	return p.next.RoundTrip(req)
}

// Unwrap returns the transport requests are forwarded to.
func (p *PacedTransport) Unwrap() http.RoundTripper {
	return p.next
}
