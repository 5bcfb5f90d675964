// Package where resolves the filesystem locations anikit reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "ANIKIT_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding anikit.toml.
// It follows os.UserConfigDir unless ANIKIT_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache is the directory for disposable state such as the release check.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}

	return mkdir(filepath.Join(base, constant.App))
}

// Logs is the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Scripts is the directory searched for Lua scripts given by bare name.
func Scripts() string {
	return mkdir(filepath.Join(Config(), "scripts"))
}

// ConfigFile is the full path of the TOML configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}
