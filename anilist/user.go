// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// UserEndpoint reads profiles and edits the viewer's lists and relationships.
// Everything named Viewer or Toggle, and the Update methods, need an authenticated client.
type UserEndpoint struct {
	c *Client
}

// FavouriteKind names what ToggleFavourite acts on.
type FavouriteKind string

const (
	FavouriteAnime     FavouriteKind = "animeId"
	FavouriteManga     FavouriteKind = "mangaId"
	FavouriteCharacter FavouriteKind = "characterId"
	FavouriteStaff     FavouriteKind = "staffId"
	FavouriteStudio    FavouriteKind = "studioId"
)

var viewerQuery = fmt.Sprintf(`
query {
	Viewer {
		%s
		unreadNotificationCount
	}
}
`, userFields)

var userByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	User (id: $id) {
		%s
	}
}
`, userFields)

var userByNameQuery = fmt.Sprintf(`
query ($name: String) {
	User (name: $name) {
		%s
	}
}
`, userFields)

var userPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $search: String, $sort: [UserSort]) {
	Page (page: $page, perPage: $perPage) {
		users (search: $search, sort: $sort) {
			%s
		}
	}
}
`, userFields)

var mediaListCollectionQuery = fmt.Sprintf(`
query ($userId: Int, $type: MediaType, $status: MediaListStatus) {
	MediaListCollection (userId: $userId, type: $type, status: $status) {
		lists {
			name
			status
			isCustomList
			entries {
				%s
			}
		}
	}
}
`, mediaListFields)

var toggleFollowQuery = fmt.Sprintf(`
mutation ($userId: Int) {
	ToggleFollow (userId: $userId) {
		%s
	}
}
`, userFields)

// toggleFavouriteQuery takes the argument name of a FavouriteKind.
const toggleFavouriteQuery = `
mutation ($id: Int) {
	ToggleFavourite (%s: $id) {
		anime { pageInfo { total } }
	}
}
`

var saveEntryQuery = fmt.Sprintf(`
mutation ($id: Int, $progress: Int, $status: MediaListStatus, $completedAt: FuzzyDateInput) {
	SaveMediaListEntry (id: $id, progress: $progress, status: $status, completedAt: $completedAt) {
		%s
	}
}
`, mediaListFields)

// Viewer returns the account the client's token belongs to.
func (e *UserEndpoint) Viewer(ctx context.Context) (*User, error) {
	return fetch[*User](ctx, e.c, viewerQuery, nil, "Viewer")
}

// ViewerAnimeList returns every entry of the viewer's anime lists, optionally limited to one status.
// An empty status returns all of them.
func (e *UserEndpoint) ViewerAnimeList(ctx context.Context, status MediaListStatus) ([]MediaList, error) {
	viewer, err := e.Viewer(ctx)
	if err != nil {
		return nil, err
	}

	vars := map[string]any{
		"userId": viewer.ID,
		"type":   MediaTypeAnime,
	}
	if status != "" {
		vars["status"] = status
	}

	groups, err := fetch[[]MediaListGroup](ctx, e.c, mediaListCollectionQuery, vars, "MediaListCollection.lists")
	if err != nil {
		return nil, err
	}

	return lo.FlatMap(groups, func(g MediaListGroup, _ int) []MediaList {
		return g.Entries
	}), nil
}

// ByID returns the user with the given id.
func (e *UserEndpoint) ByID(ctx context.Context, id int) (*User, error) {
	return fetch[*User](ctx, e.c, userByIDQuery, map[string]any{"id": id}, "User")
}

// ByName returns the user with the given name.
func (e *UserEndpoint) ByName(ctx context.Context, name string) (*User, error) {
	return fetch[*User](ctx, e.c, userByNameQuery, map[string]any{"name": name}, "User")
}

func (e *UserEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*User, error) {
	return fetch[[]*User](ctx, e.c, userPageQuery, paged(page, perPage, vars), "Page.users")
}

// Search returns users whose names match query.
func (e *UserEndpoint) Search(ctx context.Context, query string, page, perPage int) ([]*User, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"search": query,
		"sort":   []string{"SEARCH_MATCH"},
	})
}

// MostAnimeWatched ranks users by time spent watching anime.
func (e *UserEndpoint) MostAnimeWatched(ctx context.Context, page, perPage int) ([]*User, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"WATCHED_TIME_DESC"}})
}

// MostMangaRead ranks users by chapters read.
func (e *UserEndpoint) MostMangaRead(ctx context.Context, page, perPage int) ([]*User, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"CHAPTERS_READ_DESC"}})
}

// ToggleFollow follows or unfollows a user and returns them with IsFollowing updated.
func (e *UserEndpoint) ToggleFollow(ctx context.Context, userID int) (*User, error) {
	return fetch[*User](ctx, e.c, toggleFollowQuery, map[string]any{"userId": userID}, "ToggleFollow")
}

// ToggleFavourite adds or removes a favourite of the given kind.
func (e *UserEndpoint) ToggleFavourite(ctx context.Context, kind FavouriteKind, id int) error {
	switch kind {
	case FavouriteAnime, FavouriteManga, FavouriteCharacter, FavouriteStaff, FavouriteStudio:
	default:
		return &Error{Kind: KindBadRequest, Message: fmt.Sprintf("unknown favourite kind %q", kind)}
	}

	query := fmt.Sprintf(toggleFavouriteQuery, kind)
	_, err := fetch[map[string]any](ctx, e.c, query, map[string]any{"id": id}, "ToggleFavourite")
	return err
}

// UpdateProgress sets the progress of a list entry. entryID is the MediaList id, not the media id.
func (e *UserEndpoint) UpdateProgress(ctx context.Context, entryID, progress int) (*MediaList, error) {
	vars := map[string]any{
		"id":       entryID,
		"progress": progress,
	}
	return fetch[*MediaList](ctx, e.c, saveEntryQuery, vars, "SaveMediaListEntry")
}

// UpdateStatus moves a list entry to another status. A zero completedAt leaves the completion date alone.
func (e *UserEndpoint) UpdateStatus(ctx context.Context, entryID int, status MediaListStatus, completedAt FuzzyDate) (*MediaList, error) {
	vars := map[string]any{
		"id":     entryID,
		"status": status,
	}
	if !completedAt.IsZero() {
		vars["completedAt"] = completedAt.input()
	}
	return fetch[*MediaList](ctx, e.c, saveEntryQuery, vars, "SaveMediaListEntry")
}
