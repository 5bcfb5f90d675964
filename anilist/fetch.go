// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

const defaultPerPage = 20

// fetch runs query under the client's retry policy and decodes the value at path,
// which is relative to the data object (e.g. "Page.media").
func fetch[T any](ctx context.Context, c *Client, query string, variables map[string]any, path string) (T, error) {
	return Retry(ctx, c.retry, func(ctx context.Context) (T, error) {
		var out T

		data, err := c.Query(ctx, query, variables)
		if err != nil {
			return out, err
		}

		node := gjson.GetBytes(data, path)
		if !node.Exists() || node.Type == gjson.Null {
			return out, decodeError(fmt.Errorf("response has no %s", path))
		}

		if err := json.Unmarshal([]byte(node.Raw), &out); err != nil {
			return out, decodeError(fmt.Errorf("decode %s: %w", path, err))
		}

		return out, nil
	})
}

// paged adds page and perPage to vars. Non-positive values fall back to page 1 of defaultPerPage.
func paged(page, perPage int, vars map[string]any) map[string]any {
	if vars == nil {
		vars = make(map[string]any, 2)
	}

	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = defaultPerPage
	}

	vars["page"] = page
	vars["perPage"] = perPage

	return vars
}
