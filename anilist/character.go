// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// CharacterEndpoint looks up characters.
type CharacterEndpoint struct {
	c *Client
}

var characterPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $search: String, $sort: [CharacterSort], $isBirthday: Boolean) {
	Page (page: $page, perPage: $perPage) {
		characters (search: $search, sort: $sort, isBirthday: $isBirthday) {
			%s
		}
	}
}
`, characterFields)

var characterByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Character (id: $id) {
		%s
	}
}
`, characterFields)

func (e *CharacterEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Character, error) {
	return fetch[[]*Character](ctx, e.c, characterPageQuery, paged(page, perPage, vars), "Page.characters")
}

// Popular returns the most favourited characters.
func (e *CharacterEndpoint) Popular(ctx context.Context, page, perPage int) ([]*Character, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"FAVOURITES_DESC"}})
}

// MostFavourited is Popular under the name AniList's rankings use.
func (e *CharacterEndpoint) MostFavourited(ctx context.Context, page, perPage int) ([]*Character, error) {
	return e.Popular(ctx, page, perPage)
}

// Search returns characters whose names match query.
func (e *CharacterEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*Character, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"search": query,
		"sort":   []string{"SEARCH_MATCH"},
	})
}

// BirthdaysToday returns characters whose birthday is today in AniList's time zone.
func (e *CharacterEndpoint) BirthdaysToday(ctx context.Context, page, perPage int) ([]*Character, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"isBirthday": true,
		"sort":       []string{"FAVOURITES_DESC"},
	})
}

// ByID returns the character with the given id.
func (e *CharacterEndpoint) ByID(ctx context.Context, id int) (*Character, error) {
	return fetch[*Character](ctx, e.c, characterByIDQuery, map[string]any{"id": id}, "Character")
}
