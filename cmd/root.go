// Package cmd implements the anikit command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/log"
	"github.com/anisan-cli/anikit/metrics"
	"github.com/anisan-cli/anikit/style"
	"github.com/anisan-cli/anikit/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.PersistentFlags().String("token", "", "AniList access token, overrides ANILIST_TOKEN and the keyring")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), os.Stderr)
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A command-line client for the AniList GraphQL API",
	Long: style.Fg(style.HiPurple)("▇▇▇ "+constant.App) + "\n" +
		style.Italic("    - A command-line client for the AniList GraphQL API"),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if addr := viper.GetString(key.MetricsListen); addr != "" {
			go func() {
				if err := metrics.Serve(cmd.Context(), addr); err != nil {
					log.Errorf("metrics listener on %s: %v", addr, err)
				}
			}()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the command tree until ctx is done.
func Execute(ctx context.Context) {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.ExecuteContext(ctx))
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.Red)("✖"), strings.Trim(err.Error(), " \n"))

	if hint := rateLimitHint(err, time.Now()); hint != "" {
		_, _ = fmt.Fprintln(os.Stderr, style.Faint(hint))
	}

	os.Exit(1)
}

// rateLimitHint suggests how long to wait before trying again after a rate limit.
func rateLimitHint(err error, now time.Time) string {
	var apiErr *anilist.Error
	if !errors.As(err, &apiErr) {
		return ""
	}

	switch apiErr.Kind {
	case anilist.KindRateLimit, anilist.KindRateLimitSimple, anilist.KindBurstLimit:
		wait := apiErr.SuggestedDelay(now)
		if wait <= 0 && apiErr.RetryAfter > 0 {
			wait = time.Duration(apiErr.RetryAfter) * time.Second
		}
		wait = wait.Round(time.Second)
		return fmt.Sprintf("AniList is rate limiting requests, try again in %s", lo.Ternary(wait > 0, wait.String(), "a moment"))
	default:
		return ""
	}
}
