// Package cmd implements the anikit command-line interface.
package cmd

import (
	"github.com/anisan-cli/anikit/anilist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mangaCmd)

	mangaCmd.AddCommand(
		pageCmd("popular", "Most popular manga", (*anilist.Client).Manga, (*anilist.MangaEndpoint).Popular),
		pageCmd("trending", "Currently trending manga", (*anilist.Client).Manga, (*anilist.MangaEndpoint).Trending),
		pageCmd("top", "Highest rated manga", (*anilist.Client).Manga, (*anilist.MangaEndpoint).TopRated),
		pageCmd("releasing", "Manga still being published", (*anilist.Client).Manga, (*anilist.MangaEndpoint).Releasing),
		pageCmd("completed", "Finished manga", (*anilist.Client).Manga, (*anilist.MangaEndpoint).Completed),
		searchCmd((*anilist.Client).Manga, (*anilist.MangaEndpoint).Search),
		getCmd("get <id>", "Show one manga", (*anilist.Client).Manga, (*anilist.MangaEndpoint).ByID),
	)
}

var mangaCmd = &cobra.Command{
	Use:   "manga",
	Short: "Browse and search manga",
}
