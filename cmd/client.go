// Package cmd implements the anikit command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/auth"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/log"
	"github.com/anisan-cli/anikit/network"
	"github.com/anisan-cli/anikit/open"
	"github.com/anisan-cli/anikit/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// retryPolicy reads the retry.* keys.
func retryPolicy() anilist.RetryPolicy {
	return anilist.RetryPolicy{
		MaxRetries:         viper.GetInt(key.RetryMaxRetries),
		BaseDelay:          time.Duration(viper.GetInt(key.RetryBaseDelay)) * time.Millisecond,
		MaxDelay:           time.Duration(viper.GetInt(key.RetryMaxDelay)) * time.Millisecond,
		ExponentialBackoff: viper.GetBool(key.RetryExponentialBackoff),
	}
}

// newClient builds a client from the api.* and retry.* keys and the resolved token.
func newClient(cmd *cobra.Command) *anilist.Client {
	flag, _ := cmd.Flags().GetString("token")
	token, source := auth.Resolve(flag)
	log.Debugf("token source: %s", source)

	return anilist.New(
		anilist.WithEndpoint(viper.GetString(key.APIEndpoint)),
		anilist.WithHTTPClient(network.NewClient(
			time.Duration(viper.GetInt(key.APITimeout))*time.Second,
			viper.GetInt(key.APIRequestsPerMinute),
		)),
		anilist.WithToken(token.OrEmpty()),
		anilist.WithRetryPolicy(retryPolicy()),
	)
}

// outputFlags adds the flags shared by every command printing results.
func outputFlags(cmd *cobra.Command, list bool) {
	cmd.Flags().BoolP("json", "j", false, "Print the raw result as JSON")

	if list {
		cmd.Flags().IntP("page", "p", 1, "Page number")
		cmd.Flags().IntP("per-page", "n", 20, "Results per page")
		cmd.Flags().BoolP("browse", "b", false, "Browse the results interactively")
		cmd.Flags().BoolP("open", "o", false, "Open the last viewed result on anilist.co after browsing")
		cmd.MarkFlagsMutuallyExclusive("json", "browse")
	}
}

func paging(cmd *cobra.Command) (page, perPage int) {
	return lo.Must(cmd.Flags().GetInt("page")), lo.Must(cmd.Flags().GetInt("per-page"))
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// show prints a result according to --json and --browse.
// title heads the browser; single results are shown as one item.
func show(cmd *cobra.Command, title string, v any) error {
	if lo.Must(cmd.Flags().GetBool("json")) {
		return printJSON(cmd, v)
	}

	items := tui.ItemsOf(v)
	if items == nil {
		return printJSON(cmd, v)
	}

	if browse, err := cmd.Flags().GetBool("browse"); err == nil && browse {
		opened, err := tui.Browse(title, items)
		if err != nil {
			return err
		}

		item, ok := opened.Get()
		if !ok || item.URL == "" {
			return nil
		}

		cmd.Println(item.URL)
		if o, err := cmd.Flags().GetBool("open"); err == nil && o {
			return open.URL(item.URL)
		}
		return nil
	}

	for i, item := range items {
		cmd.Println(item.Title())
		if d := item.Description(); d != "" {
			cmd.Println("  " + d)
		}
		if item.URL != "" {
			cmd.Println("  " + item.URL)
		}

		if i < len(items)-1 {
			cmd.Println()
		}
	}

	if len(items) == 0 {
		cmd.PrintErrln("no results")
	}

	return nil
}

// one wraps a single pointer result so it renders like a list of one.
func one[T any](v *T) []*T {
	if v == nil {
		return nil
	}
	return []*T{v}
}

// showOne prints a single result, as an object under --json.
func showOne[T any](cmd *cobra.Command, v *T) error {
	if lo.Must(cmd.Flags().GetBool("json")) {
		return printJSON(cmd, v)
	}
	return show(cmd, "", one(v))
}

func intArg(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}
