// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// ForumEndpoint reads and writes forum threads.
type ForumEndpoint struct {
	c *Client
}

// LikeableType is the target kind of ToggleLikeV2.
type LikeableType string

const (
	LikeThread        LikeableType = "THREAD"
	LikeThreadComment LikeableType = "THREAD_COMMENT"
	LikeActivity      LikeableType = "ACTIVITY"
	LikeActivityReply LikeableType = "ACTIVITY_REPLY"
)

var threadPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $search: String, $sort: [ThreadSort]) {
	Page (page: $page, perPage: $perPage) {
		threads (search: $search, sort: $sort) {
			%s
		}
	}
}
`, threadFields)

var threadByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Thread (id: $id) {
		%s
	}
}
`, threadFields)

var threadCommentsQuery = fmt.Sprintf(`
query ($threadId: Int, $page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		threadComments (threadId: $threadId) {
			%s
		}
	}
}
`, threadCommentFields)

var saveThreadQuery = fmt.Sprintf(`
mutation ($title: String, $body: String, $categories: [Int]) {
	SaveThread (title: $title, body: $body, categories: $categories) {
		%s
	}
}
`, threadFields)

var saveThreadCommentQuery = fmt.Sprintf(`
mutation ($threadId: Int, $comment: String) {
	SaveThreadComment (threadId: $threadId, comment: $comment) {
		%s
	}
}
`, threadCommentFields)

var likeThreadQuery = fmt.Sprintf(`
mutation ($id: Int, $type: LikeableType) {
	ToggleLikeV2 (id: $id, type: $type) {
		... on Thread {
			%s
		}
	}
}
`, threadFields)

var likeThreadCommentQuery = fmt.Sprintf(`
mutation ($id: Int, $type: LikeableType) {
	ToggleLikeV2 (id: $id, type: $type) {
		... on ThreadComment {
			%s
		}
	}
}
`, threadCommentFields)

func (e *ForumEndpoint) threads(ctx context.Context, page, perPage int, vars map[string]any) ([]*Thread, error) {
	return fetch[[]*Thread](ctx, e.c, threadPageQuery, paged(page, perPage, vars), "Page.threads")
}

// RecentThreads returns threads by last activity.
func (e *ForumEndpoint) RecentThreads(ctx context.Context, page, perPage int) ([]*Thread, error) {
	return e.threads(ctx, page, perPage, map[string]any{"sort": []string{"UPDATED_AT_DESC"}})
}

// SearchThreads returns threads matching query.
func (e *ForumEndpoint) SearchThreads(ctx context.Context, query string, page, perPage int) ([]*Thread, error) {
	return e.threads(ctx, page, perPage, map[string]any{
		"search": query,
		"sort":   []string{"SEARCH_MATCH"},
	})
}

// ThreadByID returns one thread.
func (e *ForumEndpoint) ThreadByID(ctx context.Context, id int) (*Thread, error) {
	return fetch[*Thread](ctx, e.c, threadByIDQuery, map[string]any{"id": id}, "Thread")
}

// ThreadComments returns the comments of a thread.
func (e *ForumEndpoint) ThreadComments(ctx context.Context, threadID, page, perPage int) ([]*ThreadComment, error) {
	vars := paged(page, perPage, map[string]any{"threadId": threadID})
	return fetch[[]*ThreadComment](ctx, e.c, threadCommentsQuery, vars, "Page.threadComments")
}

// CreateThread opens a thread. categories may be nil.
func (e *ForumEndpoint) CreateThread(ctx context.Context, title, body string, categories []int) (*Thread, error) {
	vars := map[string]any{
		"title": title,
		"body":  body,
	}
	if len(categories) > 0 {
		vars["categories"] = categories
	}
	return fetch[*Thread](ctx, e.c, saveThreadQuery, vars, "SaveThread")
}

// PostComment replies to a thread.
func (e *ForumEndpoint) PostComment(ctx context.Context, threadID int, comment string) (*ThreadComment, error) {
	vars := map[string]any{
		"threadId": threadID,
		"comment":  comment,
	}
	return fetch[*ThreadComment](ctx, e.c, saveThreadCommentQuery, vars, "SaveThreadComment")
}

// ToggleThreadLike likes or unlikes a thread.
func (e *ForumEndpoint) ToggleThreadLike(ctx context.Context, id int) (*Thread, error) {
	vars := map[string]any{"id": id, "type": LikeThread}
	return fetch[*Thread](ctx, e.c, likeThreadQuery, vars, "ToggleLikeV2")
}

// ToggleCommentLike likes or unlikes a thread comment.
func (e *ForumEndpoint) ToggleCommentLike(ctx context.Context, id int) (*ThreadComment, error) {
	vars := map[string]any{"id": id, "type": LikeThreadComment}
	return fetch[*ThreadComment](ctx, e.c, likeThreadCommentQuery, vars, "ToggleLikeV2")
}
