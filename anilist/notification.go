// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"fmt"
)

// NotificationEndpoint reads the viewer's notifications. Every method needs an authenticated client.
type NotificationEndpoint struct {
	c *Client
}

var notificationPageQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $types: [NotificationType], $reset: Boolean) {
	Page (page: $page, perPage: $perPage) {
		notifications (type_in: $types, resetNotificationCount: $reset) {
			%s
		}
	}
}
`, notificationFields)

const unreadCountQuery = `
query {
	Viewer {
		unreadNotificationCount
	}
}
`

func (e *NotificationEndpoint) page(ctx context.Context, page, perPage int, vars map[string]any) ([]*Notification, error) {
	return fetch[[]*Notification](ctx, e.c, notificationPageQuery, paged(page, perPage, vars), "Page.notifications")
}

// List returns the newest notifications without touching the unread count.
func (e *NotificationEndpoint) List(ctx context.Context, page, perPage int) ([]*Notification, error) {
	return e.page(ctx, page, perPage, map[string]any{"reset": false})
}

// ByType returns notifications of one type, e.g. "AIRING" or "FOLLOWING".
func (e *NotificationEndpoint) ByType(ctx context.Context, kind string, page, perPage int) ([]*Notification, error) {
	return e.page(ctx, page, perPage, map[string]any{
		"types": []string{kind},
		"reset": false,
	})
}

// UnreadCount returns how many notifications the viewer has not seen.
func (e *NotificationEndpoint) UnreadCount(ctx context.Context) (int, error) {
	return fetch[int](ctx, e.c, unreadCountQuery, nil, "Viewer.unreadNotificationCount")
}

// MarkRead clears the unread count. AniList only resets it as a side effect of listing notifications.
func (e *NotificationEndpoint) MarkRead(ctx context.Context) error {
	_, err := e.page(ctx, 1, 1, map[string]any{"reset": true})
	return err
}
