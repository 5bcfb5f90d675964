// Package anilist is a typed client for the AniList GraphQL API.
//
// Query performs exactly one POST and classifies the outcome into an *Error.
// Retry re-invokes an operation after rate or burst limiting.
// The endpoint types (Anime, Manga, User and the rest) build on both.
package anilist

import (
	"net/http"

	"github.com/anisan-cli/anikit/network"
	"github.com/samber/mo"
)

// DefaultEndpoint is the public AniList GraphQL endpoint.
const DefaultEndpoint = "https://graphql.anilist.co"

// Client holds the transport, endpoint, optional token and retry policy used by the endpoint types.
// It is never mutated after New, so one value can be shared between goroutines.
type Client struct {
	http     *http.Client
	endpoint string
	token    mo.Option[string]
	retry    RetryPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates every request with the given AniList access token.
// An empty token leaves the client anonymous.
func WithToken(token string) Option {
	return func(c *Client) {
		if token == "" {
			c.token = mo.None[string]()
			return
		}
		c.token = mo.Some(token)
	}
}

// WithHTTPClient replaces network.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithEndpoint sends requests somewhere other than DefaultEndpoint.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithRetryPolicy makes endpoint methods retry rate limited calls.
// Without it every endpoint call is a single attempt.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		c.retry = p.normalize()
	}
}

// New returns an anonymous client on network.Client unless options say otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		http:     network.Client,
		endpoint: DefaultEndpoint,
		token:    mo.None[string](),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Authenticated returns a copy of c that sends token.
func (c *Client) Authenticated(token string) *Client {
	clone := *c
	WithToken(token)(&clone)
	return &clone
}

// Anonymous returns a copy of c without a token.
func (c *Client) Anonymous() *Client {
	clone := *c
	clone.token = mo.None[string]()
	return &clone
}

// HasToken reports whether requests carry an Authorization header.
func (c *Client) HasToken() bool {
	return c.token.IsPresent()
}

// Token returns the access token, if any.
func (c *Client) Token() mo.Option[string] {
	return c.token
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RetryPolicy returns the policy endpoint methods run under.
func (c *Client) RetryPolicy() RetryPolicy {
	return c.retry
}

func (c *Client) Anime() *AnimeEndpoint                   { return &AnimeEndpoint{c} }
func (c *Client) Manga() *MangaEndpoint                   { return &MangaEndpoint{c} }
func (c *Client) Character() *CharacterEndpoint           { return &CharacterEndpoint{c} }
func (c *Client) Staff() *StaffEndpoint                   { return &StaffEndpoint{c} }
func (c *Client) User() *UserEndpoint                     { return &UserEndpoint{c} }
func (c *Client) Studio() *StudioEndpoint                 { return &StudioEndpoint{c} }
func (c *Client) Forum() *ForumEndpoint                   { return &ForumEndpoint{c} }
func (c *Client) Activity() *ActivityEndpoint             { return &ActivityEndpoint{c} }
func (c *Client) Review() *ReviewEndpoint                 { return &ReviewEndpoint{c} }
func (c *Client) Recommendation() *RecommendationEndpoint { return &RecommendationEndpoint{c} }
func (c *Client) Airing() *AiringEndpoint                 { return &AiringEndpoint{c} }
func (c *Client) Notification() *NotificationEndpoint     { return &NotificationEndpoint{c} }
