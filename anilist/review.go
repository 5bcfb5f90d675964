// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// ReviewEndpoint reads and writes reviews.
type ReviewEndpoint struct {
	c *Client
}

// ReviewInput is the editable part of a review. A zero ID creates a new one.
type ReviewInput struct {
	ID      int
	MediaID int
	Body    string
	Summary string
	// Score is 0-100.
	Score   int
	Private bool
}

var reviewPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $mediaId: Int, $userId: Int, $sort: [ReviewSort]) {
	Page (page: $page, perPage: $perPage) {
		reviews (mediaId: $mediaId, userId: $userId, sort: $sort) {
			%s
		}
	}
}
`, reviewFields)

var reviewByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Review (id: $id) {
		%s
	}
}
`, reviewFields)

var saveReviewQuery = fmt.Sprintf(`
mutation ($id: Int, $mediaId: Int, $body: String, $summary: String, $score: Int, $private: Boolean) {
	SaveReview (id: $id, mediaId: $mediaId, body: $body, summary: $summary, score: $score, private: $private) {
		%s
	}
}
`, reviewFields)

var rateReviewQuery = fmt.Sprintf(`
mutation ($reviewId: Int, $rating: ReviewRating) {
	RateReview (reviewId: $reviewId, rating: $rating) {
		%s
	}
}
`, reviewFields)

const deleteReviewQuery = `
mutation ($id: Int) {
	DeleteReview (id: $id) {
		deleted
	}
}
`

func (e *ReviewEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Review, error) {
	return fetch[[]*Review](ctx, e.c, reviewPageQuery, paged(page, perPage, vars), "Page.reviews")
}

// Recent returns the newest reviews.
func (e *ReviewEndpoint) Recent(ctx context.Context, page, perPage int) ([]*Review, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"CREATED_AT_DESC"}})
}

// TopRated returns reviews with the highest rating.
func (e *ReviewEndpoint) TopRated(ctx context.Context, page, perPage int) ([]*Review, error) {
	return e.page(ctx, page, perPage, map[string]any{"sort": []string{"RATING_DESC"}})
}

// ForMedia returns reviews of one anime or manga.
func (e *ReviewEndpoint) ForMedia(ctx context.Context, mediaID, page, perPage int) ([]*Review, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"mediaId": mediaID,
		"sort":    []string{"RATING_DESC"},
	})
}

// ByUser returns reviews written by one user.
func (e *ReviewEndpoint) ByUser(ctx context.Context, userID, page, perPage int) ([]*Review, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"userId": userID,
		"sort":   []string{"CREATED_AT_DESC"},
	})
}

// ByID returns one review.
func (e *ReviewEndpoint) ByID(ctx context.Context, id int) (*Review, error) {
	return fetch[*Review](ctx, e.c, reviewByIDQuery, map[string]any{"id": id}, "Review")
}

// Save creates or updates a review.
func (e *ReviewEndpoint) Save(ctx context.Context, in ReviewInput) (*Review, error) {
	vars := map[string]any{
		"mediaId": in.MediaID,
		"body":    in.Body,
		"summary": in.Summary,
		"score":   in.Score,
		"private": in.Private,
	}
	if in.ID != 0 {
		vars["id"] = in.ID
	}
	return fetch[*Review](ctx, e.c, saveReviewQuery, vars, "SaveReview")
}

// Rate votes on a review. ReviewNoVote withdraws the vote.
func (e *ReviewEndpoint) Rate(ctx context.Context, reviewID int, rating ReviewRating) (*Review, error) {
	vars := map[string]any{
		"reviewId": reviewID,
		"rating":   rating,
	}
	return fetch[*Review](ctx, e.c, rateReviewQuery, vars, "RateReview")
}

// Delete removes one of the viewer's reviews.
func (e *ReviewEndpoint) Delete(ctx context.Context, id int) (bool, error) {
	return fetch[bool](ctx, e.c, deleteReviewQuery, map[string]any{"id": id}, "DeleteReview.deleted")
}
