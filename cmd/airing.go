// Package cmd implements the anikit command-line interface.
package cmd

import (
	"github.com/anisan-cli/anikit/anilist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(airingCmd)

	airingCmd.AddCommand(
		pageCmd("upcoming", "Episodes airing next", (*anilist.Client).Airing, (*anilist.AiringEndpoint).Upcoming),
		pageCmd("today", "Episodes airing today (UTC)", (*anilist.Client).Airing, (*anilist.AiringEndpoint).Today),
		pageCmd("recent", "Episodes that aired most recently", (*anilist.Client).Airing, (*anilist.AiringEndpoint).RecentlyAired),
		idPageCmd("media <media-id>", "Airing schedule of one anime", (*anilist.Client).Airing, (*anilist.AiringEndpoint).ForMedia),
		airingNextCmd,
	)

	outputFlags(airingNextCmd, false)
}

var airingCmd = &cobra.Command{
	Use:   "airing",
	Short: "Airing schedules",
}

var airingNextCmd = &cobra.Command{
	Use:   "next <media-id>",
	Short: "Next episode of one anime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := intArg(args[0], "media id")
		handleErr(err)

		next, err := newClient(cmd).Airing().NextEpisode(cmd.Context(), id)
		handleErr(err)

		schedule, ok := next.Get()
		if !ok {
			cmd.PrintErrln("no upcoming episode")
			return
		}

		handleErr(showOne(cmd, schedule))
	},
}
