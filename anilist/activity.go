// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// ActivityEndpoint reads the activity feed and posts to it.
type ActivityEndpoint struct {
	c *Client
}

var activityPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $userId: Int, $isFollowing: Boolean, $hasRepliesOrTypeText: Boolean) {
	Page (page: $page, perPage: $perPage) {
		activities (userId: $userId, isFollowing: $isFollowing, hasRepliesOrTypeText: $hasRepliesOrTypeText, sort: [ID_DESC]) {
			%s
		}
	}
}
`, activityFields)

var textActivityPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		activities (type: TEXT, sort: [ID_DESC]) {
			... on TextActivity {
				%s
			}
		}
	}
}
`, textActivityFields)

var activityByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Activity (id: $id) {
		%s
	}
}
`, activityFields)

var activityRepliesQuery = fmt.Sprintf(`
query ($activityId: Int, $page: Int, $perPage: Int) {
	Page (page: $page, perPage: $perPage) {
		activityReplies (activityId: $activityId) {
			%s
		}
	}
}
`, activityReplyFields)

var saveTextActivityQuery = fmt.Sprintf(`
mutation ($text: String) {
	SaveTextActivity (text: $text) {
		%s
	}
}
`, textActivityFields)

var saveActivityReplyQuery = fmt.Sprintf(`
mutation ($activityId: Int, $text: String) {
	SaveActivityReply (activityId: $activityId, text: $text) {
		%s
	}
}
`, activityReplyFields)

var likeActivityQuery = fmt.Sprintf(`
mutation ($id: Int, $type: LikeableType) {
	ToggleLikeV2 (id: $id, type: $type) {
		%s
	}
}
`, activityFields)

var likeActivityReplyQuery = fmt.Sprintf(`
mutation ($id: Int, $type: LikeableType) {
	ToggleLikeV2 (id: $id, type: $type) {
		... on ActivityReply {
			%s
		}
	}
}
`, activityReplyFields)

const deleteActivityQuery = `
mutation ($id: Int) {
	DeleteActivity (id: $id) {
		deleted
	}
}
`

func (e *ActivityEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Activity, error) {
	return fetch[[]*Activity](ctx, e.c, activityPageQuery, paged(page, perPage, vars), "Page.activities")
}

// Recent returns the global feed, skipping list updates nobody replied to.
func (e *ActivityEndpoint) Recent(ctx context.Context, page, perPage int) ([]*Activity, error) {
	return e.page(ctx, page, perPage, map[string]any{"hasRepliesOrTypeText": true})
}

// Following returns the feed of users the viewer follows.
func (e *ActivityEndpoint) Following(ctx context.Context, page, perPage int) ([]*Activity, error) {
	return e.page(ctx, page, perPage, map[string]any{"isFollowing": true})
}

// ByUser returns the activities of one user.
func (e *ActivityEndpoint) ByUser(ctx context.Context, userID, page, perPage int) ([]*Activity, error) {
	return e.page(ctx, page, perPage, map[string]any{"userId": userID})
}

// Text returns recent status posts.
func (e *ActivityEndpoint) Text(ctx context.Context, page, perPage int) ([]*TextActivity, error) {
	return fetch[[]*TextActivity](ctx, e.c, textActivityPageQuery, paged(page, perPage, nil), "Page.activities")
}

// ByID returns one activity of any variant.
func (e *ActivityEndpoint) ByID(ctx context.Context, id int) (*Activity, error) {
	return fetch[*Activity](ctx, e.c, activityByIDQuery, map[string]any{"id": id}, "Activity")
}

// Replies returns the replies to an activity.
func (e *ActivityEndpoint) Replies(ctx context.Context, activityID, page, perPage int) ([]*ActivityReply, error) {
	vars := paged(page, perPage, map[string]any{"activityId": activityID})
	return fetch[[]*ActivityReply](ctx, e.c, activityRepliesQuery, vars, "Page.activityReplies")
}

// CreateText posts a status.
func (e *ActivityEndpoint) CreateText(ctx context.Context, text string) (*TextActivity, error) {
	return fetch[*TextActivity](ctx, e.c, saveTextActivityQuery, map[string]any{"text": text}, "SaveTextActivity")
}

// Reply answers an activity.
func (e *ActivityEndpoint) Reply(ctx context.Context, activityID int, text string) (*ActivityReply, error) {
	vars := map[string]any{
		"activityId": activityID,
		"text":       text,
	}
	return fetch[*ActivityReply](ctx, e.c, saveActivityReplyQuery, vars, "SaveActivityReply")
}

// ToggleLike likes or unlikes an activity.
func (e *ActivityEndpoint) ToggleLike(ctx context.Context, id int) (*Activity, error) {
	vars := map[string]any{"id": id, "type": LikeActivity}
	return fetch[*Activity](ctx, e.c, likeActivityQuery, vars, "ToggleLikeV2")
}

// ToggleReplyLike likes or unlikes an activity reply.
func (e *ActivityEndpoint) ToggleReplyLike(ctx context.Context, id int) (*ActivityReply, error) {
	vars := map[string]any{"id": id, "type": LikeActivityReply}
	return fetch[*ActivityReply](ctx, e.c, likeActivityReplyQuery, vars, "ToggleLikeV2")
}

// Delete removes one of the viewer's activities and reports whether AniList deleted it.
func (e *ActivityEndpoint) Delete(ctx context.Context, id int) (bool, error) {
	return fetch[bool](ctx, e.c, deleteActivityQuery, map[string]any{"id": id}, "DeleteActivity.deleted")
}
