// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/log"
	"github.com/anisan-cli/anikit/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Rate limit headers AniList sends with a 429.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// Values used when a rate limit header is present but not an integer.
const (
	fallbackLimit      = 90
	fallbackRemaining  = 0
	fallbackReset      = 0
	fallbackRetryAfter = 60
)

type envelope struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Query posts one GraphQL document and returns the JSON found under "data".
// It never retries and never sleeps. Every error it returns is an *Error.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Kind: KindBadRequest, Message: "empty query"}
	}

	started := time.Now()
	data, err := c.dispatch(ctx, query, variables)
	took := time.Since(started)

	outcome := "success"
	if err != nil {
		outcome = KindOf(err).String()
	}
	metrics.ObserveRequest(outcome, took)

	entry := log.WithFields(logrus.Fields{
		"request": uuid.NewString(),
		"outcome": outcome,
		"took":    took.Round(time.Millisecond),
		"auth":    c.HasToken(),
	})
	if err != nil {
		entry.Warn(err)
	} else {
		entry.Debug("anilist call succeeded")
	}

	return data, err
}

func (c *Client) dispatch(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(envelope{Query: query, Variables: variables})
	if err != nil {
		return nil, decodeError(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, networkError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	if token, ok := c.token.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	payload, readErr := io.ReadAll(resp.Body)
	return classify(resp.StatusCode, resp.Header, payload, readErr)
}

// classify turns a finished HTTP exchange into the data payload or an *Error.
func classify(status int, header http.Header, body []byte, readErr error) (json.RawMessage, error) {
	switch {
	case status >= 200 && status < 300:
		if readErr != nil {
			return nil, networkError(readErr)
		}
		return inspect(body)
	case status == http.StatusBadRequest:
		return nil, &Error{Kind: KindBadRequest, Message: bodyText(body, readErr, "Bad Request")}
	case status == http.StatusUnauthorized:
		return nil, &Error{Kind: KindAuthenticationRequired}
	case status == http.StatusForbidden:
		return nil, &Error{Kind: KindAccessDenied}
	case status == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound}
	case status == http.StatusTooManyRequests:
		return nil, rateLimit(header)
	case status >= 500 && status < 600:
		return nil, &Error{Kind: KindServerError, Status: status, Message: bodyText(body, readErr, "Server Error")}
	default:
		return nil, &Error{Kind: KindServerError, Status: status, Message: bodyText(body, readErr, "Unknown Error")}
	}
}

func bodyText(body []byte, readErr error, fallback string) string {
	if readErr != nil {
		return fallback
	}
	return strings.ToValidUTF8(string(body), "\uFFFD")
}

// rateLimit needs all four headers for the detailed error.
// A header that is present but malformed takes its fallback value instead.
func rateLimit(header http.Header) *Error {
	names := [...]string{HeaderRateLimitLimit, HeaderRateLimitRemaining, HeaderRateLimitReset, HeaderRetryAfter}

	var values [len(names)]string
	for i, name := range names {
		v := header.Values(name)
		if len(v) == 0 {
			return &Error{Kind: KindRateLimitSimple}
		}
		values[i] = v[0]
	}

	return NewRateLimitError(
		int(parseUint(values[0], 32, fallbackLimit)),
		int(parseUint(values[1], 32, fallbackRemaining)),
		int64(parseUint(values[2], 63, fallbackReset)),
		int(parseUint(values[3], 32, fallbackRetryAfter)),
	)
}

func parseUint(s string, bits int, fallback uint64) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return fallback
	}
	return n
}

// inspect handles 2xx bodies. AniList sometimes reports burst limiting inside a 200,
// so an "errors" entry mentioning a rate limit is reclassified.
func inspect(body []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		return nil, decodeError(fmt.Errorf("response body is not valid JSON (%d bytes)", len(body)))
	}

	root := gjson.ParseBytes(body)
	if errs := root.Get("errors"); errs.Exists() {
		message := joinMessages(errs)

		lower := strings.ToLower(message)
		if strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many requests") {
			return nil, &Error{Kind: KindBurstLimit}
		}

		return nil, &Error{Kind: KindGraphQL, Message: message}
	}

	data := root.Get("data")
	if !data.Exists() {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(data.Raw), nil
}

func joinMessages(errs gjson.Result) string {
	if !errs.IsArray() {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(errs.Raw)); err != nil {
			return errs.Raw
		}
		return buf.String()
	}

	var messages []string
	errs.ForEach(func(_, entry gjson.Result) bool {
		if m := entry.Get("message"); m.Type == gjson.String {
			messages = append(messages, m.Str)
		} else {
			messages = append(messages, "Unknown error")
		}
		return true
	})

	return strings.Join(messages, ", ")
}
