// Package network owns the HTTP plumbing shared by every AniList call.
package network

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Client is the default client used by anilist.New.
var Client = NewClient(time.Minute, 0)

// NewClient returns a client with a pooled transport.
// A positive perMinute wraps the transport in a PacedTransport with that budget.
func NewClient(timeout time.Duration, perMinute int) *http.Client {
	var transport http.RoundTripper = newTransport()
	if perMinute > 0 {
		transport = NewPacedTransport(transport, perMinute)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// newTransport tunes cleanhttp's pooled transport for a single upstream host.
func newTransport() *http.Transport {
	t := cleanhttp.DefaultPooledTransport()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
