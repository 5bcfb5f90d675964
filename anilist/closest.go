// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
	"strings"

	"github.com/anisan-cli/anikit/log"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// closestAttempts caps how many shortened queries Closest tries.
const closestAttempts = 3

func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Closest searches for name and returns the result whose title is nearest by edit distance.
// When a search comes back empty the last word is dropped and the search repeated.
func (e *AnimeEndpoint) Closest(ctx context.Context, name string) (*Anime, error) {
	name = normalizedName(name)
	if name == "" {
		return nil, &Error{Kind: KindBadRequest, Message: "empty name"}
	}

	query := name
	for try := 0; try < closestAttempts; try++ {
		animes, err := e.Search(ctx, query, 1, defaultPerPage)
		if err != nil {
			return nil, err
		}

		if len(animes) > 0 {
			closest := lo.MinBy(animes, func(a, b *Anime) bool {
				return levenshtein.Distance(name, normalizedName(a.Name())) <
					levenshtein.Distance(name, normalizedName(b.Name()))
			})

			log.Infof("closest match for %q is %q (%d)", name, closest.Name(), closest.ID)
			return closest, nil
		}

		words := strings.Fields(query)
		if len(words) <= 2 {
			break
		}

		shorter := strings.Join(words[:len(words)-1], " ")
		log.Infof("no results on AniList for %q, trying %q", query, shorter)
		query = shorter
	}

	return nil, &Error{Kind: KindNotFound, Message: fmt.Sprintf("no anime found for %q", name)}
}
