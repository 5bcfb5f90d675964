// Package script runs user Lua scripts against the AniList client.
package script

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	lua "github.com/yuin/gopher-lua"
)

const moduleName = "anilist"

// module builds the "anilist" Lua module around client. Blocking calls honour ctx.
func module(ctx context.Context, client *anilist.Client) lua.LGFunction {
	exports := map[string]lua.LGFunction{
		// query(q, vars) -> data | nil, message
		"query": func(L *lua.LState) int {
			q := L.CheckString(1)

			var vars map[string]any
			if t, ok := L.Get(2).(*lua.LTable); ok {
				if m, ok := tableValue(t).(map[string]any); ok {
					vars = m
				}
			}

			data, err := anilist.Retry(ctx, client.RetryPolicy(), func(ctx context.Context) (json.RawMessage, error) {
				return client.Query(ctx, q, vars)
			})
			if err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}

			var decoded any
			if err := json.Unmarshal(data, &decoded); err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}

			L.Push(toLua(L, decoded))
			return 1
		},

		// viewer_token() -> bool
		"viewer_token": func(L *lua.LState) int {
			L.Push(lua.LBool(client.HasToken()))
			return 1
		},

		// suggested_delay(remaining, reset_seconds) -> milliseconds
		"suggested_delay": func(L *lua.LState) int {
			remaining := L.CheckInt(1)
			resetIn := time.Duration(L.OptNumber(2, 0) * lua.LNumber(time.Second))
			L.Push(lua.LNumber(anilist.SuggestedDelay(remaining, resetIn).Milliseconds()))
			return 1
		},

		// sleep(ms)
		"sleep": func(L *lua.LState) int {
			d := time.Duration(L.CheckNumber(1) * lua.LNumber(time.Millisecond))
			if err := anilist.Pause(ctx, d); err != nil {
				L.RaiseError("sleep interrupted: %v", err)
			}
			return 0
		},

		// json(value) -> string
		"json": func(L *lua.LState) int {
			encoded, err := json.Marshal(fromLua(L.Get(1)))
			if err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
			L.Push(lua.LString(encoded))
			return 1
		},
	}

	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), exports)
		L.Push(mod)
		return 1
	}
}
