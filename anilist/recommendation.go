// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// RecommendationEndpoint reads and votes on recommendations.
type RecommendationEndpoint struct {
	c *Client
}

var recommendationPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $mediaId: Int, $sort: [RecommendationSort]) {
	Page (page: $page, perPage: $perPage) {
		recommendations (mediaId: $mediaId, sort: $sort) {
			%s
		}
	}
}
`, recommendationFields)

var recommendationByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Recommendation (id: $id) {
		%s
	}
}
`, recommendationFields)

var saveRecommendationQuery = fmt.Sprintf(`
mutation ($mediaId: Int, $mediaRecommendationId: Int, $rating: RecommendationRating) {
	SaveRecommendation (mediaId: $mediaId, mediaRecommendationId: $mediaRecommendationId, rating: $rating) {
		%s
	}
}
`, recommendationFields)

func (e *RecommendationEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Recommendation, error) {
	return fetch[[]*Recommendation](ctx, e.c, recommendationPageQuery, paged(page, perPage, vars), "Page.recommendations")
}

// Recent returns the newest recommendations.
func (e *RecommendationEndpoint) Recent(ctx context.Context, page, perPage int) ([]*Recommendation, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"ID_DESC"}})
}

// TopRated returns the best rated recommendations.
func (e *RecommendationEndpoint) TopRated(ctx context.Context, page, perPage int) ([]*Recommendation, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"RATING_DESC"}})
}

// ForMedia returns what users recommend alongside one media entry.
func (e *RecommendationEndpoint) ForMedia(ctx context.Context, mediaID, page, perPage int) ([]*Recommendation, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"mediaId": mediaID,
		"sort":    []string{"RATING_DESC"},
	})
}

// ByID returns one recommendation.
func (e *RecommendationEndpoint) ByID(ctx context.Context, id int) (*Recommendation, error) {
	return fetch[*Recommendation](ctx, e.c, recommendationByIDQuery, map[string]any{"id": id}, "Recommendation")
}

// Save creates the pairing of mediaID and recommendedID, or updates the viewer's vote on it.
func (e *RecommendationEndpoint) Save(ctx context.Context, mediaID, recommendedID int, rating RecommendationRating) (*Recommendation, error) {
	vars := map[string]any{
		"mediaId":               mediaID,
		"mediaRecommendationId": recommendedID,
		"rating":                rating,
	}
	return fetch[*Recommendation](ctx, e.c, saveRecommendationQuery, vars, "SaveRecommendation")
}

// Rate votes on an existing pairing. AniList has no separate mutation for it.
func (e *RecommendationEndpoint) Rate(ctx context.Context, mediaID, recommendedID int, rating RecommendationRating) (*Recommendation, error) {
	return e.Save(ctx, mediaID, recommendedID, rating)
}
