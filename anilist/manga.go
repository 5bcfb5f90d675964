// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// MangaEndpoint looks up manga.
type MangaEndpoint struct {
	c *Client
}

var mangaPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $sort: [MediaSort], $status: MediaStatus) {
	Page (page: $page, perPage: $perPage) {
		media (type: MANGA, sort: $sort, status: $status) {
			%s
		}
	}
}
`, mangaFields)

var mangaSearchQuery = fmt.Sprintf(`
query ($search: String, $page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		media (search: $search, type: MANGA) {
			%s
		}
	}
}
`, mangaFields)

var mangaByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Media (id: $id, type: MANGA) {
		%s
	}
}
`, mangaFields)

func (e *MangaEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Manga, error) {
	return fetch[[]*Manga](ctx, e.c, mangaPageQuery, paged(page, perPage, vars), "Page.media")
}

// Popular returns manga sorted by popularity.
func (e *MangaEndpoint) Popular(ctx context.Context, page, perPage int) ([]*Manga, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"POPULARITY_DESC"}})
}

// Trending returns manga sorted by current trend.
func (e *MangaEndpoint) Trending(ctx context.Context, page, perPage int) ([]*Manga, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"TRENDING_DESC"}})
}

// TopRated returns manga sorted by average score.
func (e *MangaEndpoint) TopRated(ctx context.Context, page, perPage int) ([]*Manga, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"SCORE_DESC"}})
}

// Releasing returns manga still being published.
func (e *MangaEndpoint) Releasing(ctx context.Context, page, perPage int) ([]*Manga, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"sort":   []string{"POPULARITY_DESC"},
		"status": "RELEASING",
	})
}

// Completed returns finished manga.
func (e *MangaEndpoint) Completed(ctx context.Context, page, perPage int) ([]*Manga, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"sort":   []string{"POPULARITY_DESC"},
		"status": "FINISHED",
	})
}

// Search returns manga whose titles match query.
func (e *MangaEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*Manga, error) {
	vars := paged(page, perPage, map[string]any{"search": query})
	return fetch[[]*Manga](ctx, e.c, mangaSearchQuery, vars, "Page.media")
}

// ByID returns the manga with the given id.
func (e *MangaEndpoint) ByID(ctx context.Context, id int) (*Manga, error) {
	return fetch[*Manga](ctx, e.c, mangaByIDQuery, map[string]any{"id": id}, "Media")
}
