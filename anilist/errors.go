// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"errors"
	"fmt"
)

// Kind classifies every failure a call can end with.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindDecode
	KindGraphQL
	KindAuthenticationRequired
	KindAccessDenied
	KindNotFound
	KindBadRequest
	KindRateLimit
	KindRateLimitSimple
	KindBurstLimit
	KindServerError
)

var kindNames = map[Kind]string{
	KindNetwork:                "network",
	KindDecode:                 "decode",
	KindGraphQL:                "graphql",
	KindAuthenticationRequired: "authentication_required",
	KindAccessDenied:           "access_denied",
	KindNotFound:               "not_found",
	KindBadRequest:             "bad_request",
	KindRateLimit:              "rate_limit",
	KindRateLimitSimple:        "rate_limit_simple",
	KindBurstLimit:             "burst_limit",
	KindServerError:            "server_error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the only error type returned by Query and the endpoint methods.
// Fields outside the ones listed for a kind are zero.
//
//	KindGraphQL, KindBadRequest: Message
//	KindServerError:             Status, Message
//	KindRateLimit:               Limit, Remaining, ResetAt, RetryAfter
//	KindNetwork, KindDecode:     Err
type Error struct {
	Kind Kind

	Message string
	Status  int

	Limit      int
	Remaining  int
	ResetAt    int64
	RetryAfter int

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("json parsing error: %v", e.Err)
	case KindGraphQL:
		return "graphql error: " + e.Message
	case KindAuthenticationRequired:
		return "authentication required, provide a valid access token"
	case KindAccessDenied:
		return "access denied, check your token permissions"
	case KindNotFound:
		if e.Message != "" {
			return "not found: " + e.Message
		}
		return "not found"
	case KindBadRequest:
		return "bad request: " + e.Message
	case KindRateLimit:
		return fmt.Sprintf(
			"rate limit exceeded: limit %d, remaining %d, reset at %d, retry after %d seconds",
			e.Limit, e.Remaining, e.ResetAt, e.RetryAfter,
		)
	case KindRateLimitSimple:
		return "rate limit exceeded, try again in a few moments"
	case KindBurstLimit:
		return "burst limit exceeded, slow down your requests"
	case KindServerError:
		return fmt.Sprintf("server error: %d - %s", e.Status, e.Message)
	default:
		return "unknown anilist error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, which makes the Err* sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is. Details are read with errors.As.
var (
	ErrNetwork                = &Error{Kind: KindNetwork}
	ErrDecode                 = &Error{Kind: KindDecode}
	ErrGraphQL                = &Error{Kind: KindGraphQL}
	ErrAuthenticationRequired = &Error{Kind: KindAuthenticationRequired}
	ErrAccessDenied           = &Error{Kind: KindAccessDenied}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrBadRequest             = &Error{Kind: KindBadRequest}
	ErrRateLimit              = &Error{Kind: KindRateLimit}
	ErrRateLimitSimple        = &Error{Kind: KindRateLimitSimple}
	ErrBurstLimit             = &Error{Kind: KindBurstLimit}
	ErrServerError            = &Error{Kind: KindServerError}
)

// NewRateLimitError builds the detailed 429 error.
func NewRateLimitError(limit, remaining int, resetAt int64, retryAfter int) *Error {
	return &Error{Kind: KindRateLimit, Limit: limit, Remaining: remaining, ResetAt: resetAt, RetryAfter: retryAfter}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

func decodeError(err error) *Error {
	return &Error{Kind: KindDecode, Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRetryable reports whether the retry engine would retry err.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimit, KindRateLimitSimple, KindBurstLimit:
		return true
	default:
		return false
	}
}
