// Package script runs user Lua scripts against the AniList client.
//
// Scripts get the mangal-lua-libs modules (http, json, strings, ...) plus an
// "anilist" module:
//
//	local anilist = require("anilist")
//	local data, err = anilist.query("query ($id: Int) { Media(id: $id) { title { romaji } } }", { id = 1 })
//	print(data.Media.title.romaji)
//
// Command line arguments are in the global table arg, 1-based.
package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/log"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// Run executes the script at path. print writes to out.
func Run(ctx context.Context, client *anilist.Client, path string, args []string, out io.Writer) error {
	proto, err := compile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	L := lua.NewState()
	defer L.Close()

	L.SetContext(ctx)
	libs.Preload(L)
	L.PreloadModule(moduleName, module(ctx, client))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		_, _ = fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}))

	argv := L.CreateTable(len(args), 1)
	argv.RawSetInt(0, lua.LString(path))
	for _, a := range args {
		argv.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argv)

	log.Infof("running script %s with %d args", path, len(args))

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}

	return nil
}
