// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// BatchConcurrency bounds the ByID calls a ByIDs call runs at once.
var BatchConcurrency = 4

// byIDs calls get for every id with bounded concurrency.
// The result has one slot per id in input order; a failed id leaves its slot nil
// and contributes to the returned *multierror.Error.
func byIDs[T any](ctx context.Context, ids []int, get func(context.Context, int) (*T, error)) ([]*T, error) {
	results := make([]*T, len(ids))

	var (
		mu   sync.Mutex
		merr *multierror.Error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(BatchConcurrency, 1))

	for i, id := range ids {
		g.Go(func() error {
			item, err := get(ctx, id)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("id %d: %w", id, err))
				mu.Unlock()
				return nil
			}

			results[i] = item
			return nil
		})
	}

	_ = g.Wait()

	return results, merr.ErrorOrNil()
}

// ByIDs fetches several anime at once. Partial results survive individual failures.
func (e *AnimeEndpoint) ByIDs(ctx context.Context, ids []int) ([]*Anime, error) {
	return byIDs(ctx, ids, e.ByID)
}

// ByIDs fetches several manga at once. Partial results survive individual failures.
func (e *MangaEndpoint) ByIDs(ctx context.Context, ids []int) ([]*Manga, error) {
	return byIDs(ctx, ids, e.ByID)
}
