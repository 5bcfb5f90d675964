// Package script runs user Lua scripts against the AniList client.
package script

import (
	"bytes"
	"crypto/sha256"
	"sync"

	"github.com/anisan-cli/anikit/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// protos maps the sha256 of a script's source to its compiled prototype.
var protos sync.Map

// compile reads path through the filesystem backend and returns its prototype,
// reusing an earlier compilation of identical source.
func compile(path string) (*lua.FunctionProto, error) {
	source, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(source)
	if cached, ok := protos.Load(sum); ok {
		return cached.(*lua.FunctionProto), nil
	}

	chunk, err := parse.Parse(bytes.NewReader(source), path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	protos.Store(sum, proto)
	return proto, nil
}
