// Package cmd implements the anikit command-line interface.
package cmd

import (
	"os"

	"github.com/anisan-cli/anikit/auth"
	"github.com/anisan-cli/anikit/config"
	"github.com/anisan-cli/anikit/style"
	"github.com/anisan-cli/anikit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every environment variable anikit reads.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(key string, _ int) string {
		field := config.Default[key]
		return field.Env()
	})

	names = append(names, where.EnvConfigPath, auth.EnvToken)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables anikit reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(style.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(style.Red)("unset"))
			case env == auth.EnvToken:
				cmd.Println(style.Fg(style.Green)("<hidden>"))
			default:
				cmd.Println(style.Fg(style.Green)(value))
			}
		}
	},
}
