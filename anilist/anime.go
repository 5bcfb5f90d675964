// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// AnimeEndpoint looks up anime.
type AnimeEndpoint struct {
	c *Client
}

var animePageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $sort: [MediaSort], $status: MediaStatus) {
	Page (page: $page, perPage: $perPage) {
		media (type: ANIME, sort: $sort, status: $status) {
			%s
		}
	}
}
`, animeFields)

var animeSearchQuery = fmt.Sprintf(`
query ($search: String, $page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		media (search: $search, type: ANIME) {
			%s
		}
	}
}
`, animeFields)

var animeByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Media (id: $id, type: ANIME) {
		%s
	}
}
`, animeFields)

var animeSeasonQuery = fmt.Sprintf(`
query ($season: MediaSeason, $seasonYear: Int, $page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		media (season: $season, seasonYear: $seasonYear, type: ANIME, sort: [POPULARITY_DESC]) {
			%s
		}
	}
}
`, animeFields)

func (e *AnimeEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Anime, error) {
	return fetch[[]*Anime](ctx, e.c, animePageQuery, paged(page, perPage, vars), "Page.media")
}

// Popular returns anime sorted by popularity.
func (e *AnimeEndpoint) Popular(ctx context.Context, page, perPage int) ([]*Anime, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"POPULARITY_DESC"}})
}

// Trending returns anime sorted by current trend.
func (e *AnimeEndpoint) Trending(ctx context.Context, page, perPage int) ([]*Anime, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"TRENDING_DESC"}})
}

// TopRated returns anime sorted by average score.
func (e *AnimeEndpoint) TopRated(ctx context.Context, page, perPage int) ([]*Anime, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"SCORE_DESC"}})
}

// Airing returns currently releasing anime, most popular first.
func (e *AnimeEndpoint) Airing(ctx context.Context, page, perPage int) ([]*Anime, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"sort":   []string{"POPULARITY_DESC"},
		"status": "RELEASING",
	})
}

// Search returns anime whose titles match query.
func (e *AnimeEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*Anime, error) {
	vars := paged(page, perPage, map[string]any{"search": query})
	return fetch[[]*Anime](ctx, e.c, animeSearchQuery, vars, "Page.media")
}

// ByID returns the anime with the given id.
func (e *AnimeEndpoint) ByID(ctx context.Context, id int) (*Anime, error) {
	return fetch[*Anime](ctx, e.c, animeByIDQuery, map[string]any{"id": id}, "Media")
}

// BySeason returns the anime of one season, most popular first.
func (e *AnimeEndpoint) BySeason(ctx context.Context, season MediaSeason, year, page, perPage int) ([]*Anime, error) {
	vars := paged(page, perPage, map[string]any{
		"season":     season,
		"seasonYear": year,
	})
	return fetch[[]*Anime](ctx, e.c, animeSeasonQuery, vars, "Page.media")
}
