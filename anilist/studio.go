// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// StudioEndpoint looks up studios.
type StudioEndpoint struct {
	c *Client
}

var studioPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $search: String, $sort: [StudioSort]) {
	Page (page: $page, perPage: $perPage) {
		studios (search: $search, sort: $sort) {
			%s
		}
	}
}
`, studioFields)

var studioByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Studio (id: $id) {
		%s
	}
}
`, studioFields)

var studioFavouriteQuery = fmt.Sprintf(`
mutation ($studioId: Int) {
	ToggleFavourite (studioId: $studioId) {
		studios (page: 1, perPage: 1) {
			nodes {
				%s
			}
		}
	}
}
`, studioFields)

func (e *StudioEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Studio, error) {
	return fetch[[]*Studio](ctx, e.c, studioPageQuery, paged(page, perPage, vars), "Page.studios")
}

// Popular returns the most favourited studios.
func (e *StudioEndpoint) Popular(ctx context.Context, page, perPage int) ([]*Studio, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"FAVOURITES_DESC"}})
}

// MostFavourited is an alias of Popular.
func (e *StudioEndpoint) MostFavourited(ctx context.Context, page, perPage int) ([]*Studio, error) {
	return e.Popular(ctx, page, perPage)
}

// Search returns studios whose names match query.
func (e *StudioEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*Studio, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"search": query,
		"sort":   []string{"SEARCH_MATCH"},
	})
}

// ByID returns the studio with the given id.
func (e *StudioEndpoint) ByID(ctx context.Context, id int) (*Studio, error) {
	return fetch[*Studio](ctx, e.c, studioByIDQuery, map[string]any{"id": id}, "Studio")
}

// ToggleFavourite favourites or unfavourites a studio and returns the first studio of the viewer's favourites.
func (e *StudioEndpoint) ToggleFavourite(ctx context.Context, studioID int) (*Studio, error) {
	vars := map[string]any{"studioId": studioID}
	return fetch[*Studio](ctx, e.c, studioFavouriteQuery, vars, "ToggleFavourite.studios.nodes.0")
}
