// Package cmd implements the anikit command-line interface.
package cmd

import (
	"path/filepath"
	"strings"

	"github.com/anisan-cli/anikit/filesystem"
	"github.com/anisan-cli/anikit/script"
	"github.com/anisan-cli/anikit/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// scriptPath resolves a bare script name against where.Scripts().
func scriptPath(name string) string {
	if exists, _ := filesystem.API().Exists(name); exists || strings.ContainsRune(name, filepath.Separator) {
		return name
	}

	if !strings.HasSuffix(name, ".lua") {
		name += ".lua"
	}

	return filepath.Join(where.Scripts(), name)
}

var runCmd = &cobra.Command{
	Use:   "run <script> [args...]",
	Short: "Run a Lua script against the AniList API",
	Long: `Run a Lua script with an "anilist" module for sending queries.
Bare names are looked up in the scripts directory, see anikit where --scripts.`,
	Example: `  anikit run ./airing.lua
  anikit run weekly 2024`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(script.Run(cmd.Context(), newClient(cmd), scriptPath(args[0]), args[1:], cmd.OutOrStdout()))
	},
}
