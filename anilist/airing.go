// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
)

// AiringEndpoint reads the episode schedule. Relative queries take "now" from the package clock.
type AiringEndpoint struct {
	c *Client
}

var airingPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $mediaId: Int, $airingAtGreater: Int, $airingAtLesser: Int, $sort: [AiringSort]) {
	Page (page: $page, perPage: $perPage) {
		airingSchedules (mediaId: $mediaId, airingAt_greater: $airingAtGreater, airingAt_lesser: $airingAtLesser, sort: $sort) {
			%s
		}
	}
}
`, airingFields)

var airingByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	AiringSchedule (id: $id) {
		%s
	}
}
`, airingFields)

func (e *AiringEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*AiringSchedule, error) {
	return fetch[[]*AiringSchedule](ctx, e.c, airingPageQuery, paged(page, perPage, vars), "Page.airingSchedules")
}

// Upcoming returns episodes that have not aired yet, soonest first.
func (e *AiringEndpoint) Upcoming(ctx context.Context, page, perPage int) ([]*AiringSchedule, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"airingAtGreater": clock.Now().Unix(),
		"sort":            []string{"TIME"},
	})
}

// Today returns episodes airing during the current UTC day.
func (e *AiringEndpoint) Today(ctx context.Context, page, perPage int) ([]*AiringSchedule, error) {
	start := clock.Now().UTC().Truncate(24 * time.Hour)
	return e.InRange(ctx, start, start.Add(24*time.Hour), page, perPage)
}

// RecentlyAired returns episodes that already aired, latest first.
func (e *AiringEndpoint) RecentlyAired(ctx context.Context, page, perPage int) ([]*AiringSchedule, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"airingAtLesser": clock.Now().Unix(),
		"sort":           []string{"TIME_DESC"},
	})
}

// ForMedia returns the whole schedule of one anime.
func (e *AiringEndpoint) ForMedia(ctx context.Context, mediaID, page, perPage int) ([]*AiringSchedule, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"mediaId": mediaID,
		"sort":    []string{"TIME"},
	})
}

// InRange returns episodes airing strictly between from and to.
func (e *AiringEndpoint) InRange(ctx context.Context, from, to time.Time, page, perPage int) ([]*AiringSchedule, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"airingAtGreater": from.Unix(),
		"airingAtLesser":  to.Unix(),
		"sort":            []string{"TIME"},
	})
}

// ByID returns one schedule entry.
func (e *AiringEndpoint) ByID(ctx context.Context, id int) (*AiringSchedule, error) {
	return fetch[*AiringSchedule](ctx, e.c, airingByIDQuery, map[string]any{"id": id}, "AiringSchedule")
}

// NextEpisode returns the next episode of an anime, or None when nothing is scheduled.
func (e *AiringEndpoint) NextEpisode(ctx context.Context, mediaID int) (mo.Option[*AiringSchedule], error) {
	schedules, err := e.page(ctx, 1, 1, map[string]any{
		"mediaId":         mediaID,
		"airingAtGreater": clock.Now().Unix(),
		"sort":            []string{"TIME"},
	})
	if err != nil {
		return mo.None[*AiringSchedule](), err
	}

	if len(schedules) == 0 {
		return mo.None[*AiringSchedule](), nil
	}

	return mo.Some(schedules[0]), nil
}
