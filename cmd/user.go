// Package cmd implements the anikit command-line interface.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.AddCommand(
		userViewerCmd,
		userGetCmd,
		userListCmd,
		searchCmd((*anilist.Client).User, (*anilist.UserEndpoint).Search),
		pageCmd("watched", "Users with the most anime watched", (*anilist.Client).User, (*anilist.UserEndpoint).MostAnimeWatched),
		pageCmd("read", "Users with the most manga read", (*anilist.Client).User, (*anilist.UserEndpoint).MostMangaRead),
	)

	outputFlags(userViewerCmd, false)
	outputFlags(userGetCmd, false)

	outputFlags(userListCmd, false)
	userListCmd.Flags().BoolP("browse", "b", false, "Browse the entries interactively")
	userListCmd.Flags().StringP("status", "s", "", "Only entries with this status, e.g. CURRENT")
	lo.Must0(userListCmd.RegisterFlagCompletionFunc("status", completeFrom(enumValues(anilist.ListStatuses))))
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up AniList users",
}

var userViewerCmd = &cobra.Command{
	Use:   "viewer",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		viewer, err := newClient(cmd).User().Viewer(cmd.Context())
		handleErr(err)
		handleErr(showOne(cmd, viewer))
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <id|name>",
	Short: "Show one user by id or name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		users := newClient(cmd).User()

		var (
			user *anilist.User
			err  error
		)

		if id, convErr := strconv.Atoi(args[0]); convErr == nil {
			user, err = users.ByID(cmd.Context(), id)
		} else {
			user, err = users.ByName(cmd.Context(), args[0])
		}

		handleErr(err)
		handleErr(showOne(cmd, user))
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the authenticated user's anime list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		status := anilist.MediaListStatus(strings.ToUpper(lo.Must(cmd.Flags().GetString("status"))))
		if status != "" && !lo.Contains(anilist.ListStatuses, status) {
			handleErr(fmt.Errorf("unknown list status %q", status))
		}

		entries, err := newClient(cmd).User().ViewerAnimeList(cmd.Context(), status)
		handleErr(err)
		handleErr(show(cmd, "Anime list", entries))
	},
}
