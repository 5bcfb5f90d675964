// Package script runs user Lua scripts against the AniList client.
package script

import (
	"encoding/json"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

// toLua converts decoded JSON (maps, slices, float64, string, bool, nil) into Lua values.
// Arrays become 1-based sequences.
func toLua(L *lua.LState, v any) lua.LValue {
	switch value := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(value)
	case string:
		return lua.LString(value)
	case float64:
		return lua.LNumber(value)
	case int:
		return lua.LNumber(value)
	case json.Number:
		f, _ := value.Float64()
		return lua.LNumber(f)
	case []any:
		table := L.CreateTable(len(value), 0)
		for _, item := range value {
			table.Append(toLua(L, item))
		}
		return table
	case map[string]any:
		table := L.CreateTable(0, len(value))
		for k, item := range value {
			table.RawSetString(k, toLua(L, item))
		}
		return table
	default:
		return lua.LString(fmt.Sprint(value))
	}
}

// fromLua converts a Lua value into something encoding/json can marshal.
// A table whose keys are exactly 1..n becomes a slice, any other table a map keyed by tostring.
func fromLua(v lua.LValue) any {
	switch value := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(value)
	case lua.LString:
		return string(value)
	case lua.LNumber:
		f := float64(value)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case *lua.LTable:
		return tableValue(value)
	default:
		return value.String()
	}
}

func tableValue(table *lua.LTable) any {
	n := table.Len()

	count := 0
	table.ForEach(func(lua.LValue, lua.LValue) { count++ })

	if n > 0 && n == count {
		list := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			list = append(list, fromLua(table.RawGetInt(i)))
		}
		return list
	}

	m := make(map[string]any, count)
	table.ForEach(func(k, v lua.LValue) {
		m[k.String()] = fromLua(v)
	})
	return m
}
