// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// StaffEndpoint looks up voice actors and production staff.
type StaffEndpoint struct {
	c *Client
}

var staffPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $search: String, $sort: [StaffSort], $isBirthday: Boolean) {
	Page (page: $page, perPage: $perPage) {
		staff (search: $search, sort: $sort, isBirthday: $isBirthday) {
			%s
		}
	}
}
`, staffFields)

var staffByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Staff (id: $id) {
		%s
	}
}
`, staffFields)

func (e *StaffEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Staff, error) {
	return fetch[[]*Staff](ctx, e.c, staffPageQuery, paged(page, perPage, vars), "Page.staff")
}

// Popular returns the most favourited staff.
func (e *StaffEndpoint) Popular(ctx context.Context, page, perPage int) ([]*Staff, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"FAVOURITES_DESC"}})
}

// MostFavourited is an alias of Popular.
func (e *StaffEndpoint) MostFavourited(ctx context.Context, page, perPage int) ([]*Staff, error) {
	return e.Popular(ctx, page, perPage)
}

// Search returns staff whose names match query.
func (e *StaffEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*Staff, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"search": query,
		"sort":   []string{"SEARCH_MATCH"},
	})
}

// BirthdaysToday returns staff born on today's date.
func (e *StaffEndpoint) BirthdaysToday(ctx context.Context, page, perPage int) ([]*Staff, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"isBirthday": true,
		"sort":       []string{"FAVOURITES_DESC"},
	})
}

// ByID returns the staff member with the given id.
func (e *StaffEndpoint) ByID(ctx context.Context, id int) (*Staff, error) {
	return fetch[*Staff](ctx, e.c, staffByIDQuery, map[string]any{"id": id}, "Staff")
}
