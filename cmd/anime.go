// Package cmd implements the anikit command-line interface.
package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(animeCmd)

	animeCmd.AddCommand(
		pageCmd("popular", "Most popular anime", (*anilist.Client).Anime, (*anilist.AnimeEndpoint).Popular),
		pageCmd("trending", "Currently trending anime", (*anilist.Client).Anime, (*anilist.AnimeEndpoint).Trending),
		pageCmd("top", "Highest rated anime", (*anilist.Client).Anime, (*anilist.AnimeEndpoint).TopRated),
		pageCmd("airing", "Popular anime airing right now", (*anilist.Client).Anime, (*anilist.AnimeEndpoint).Airing),
		searchCmd((*anilist.Client).Anime, (*anilist.AnimeEndpoint).Search),
		animeGetCmd,
		animeSeasonCmd,
	)

	outputFlags(animeGetCmd, false)

	outputFlags(animeSeasonCmd, true)
	animeSeasonCmd.Flags().StringP("season", "s", "", "WINTER, SPRING, SUMMER or FALL (default: current season)")
	animeSeasonCmd.Flags().IntP("year", "y", 0, "Season year (default: current year)")
	lo.Must0(animeSeasonCmd.RegisterFlagCompletionFunc("season", completeFrom(enumValues(anilist.Seasons))))
}

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Browse and search anime",
}

var animeGetCmd = &cobra.Command{
	Use:   "get <id|title>",
	Short: "Show one anime by id, or the closest title match",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		anime := newClient(cmd).Anime()

		var (
			result *anilist.Anime
			err    error
		)

		if id, convErr := strconv.Atoi(args[0]); convErr == nil && len(args) == 1 {
			result, err = anime.ByID(cmd.Context(), id)
		} else {
			result, err = anime.Closest(cmd.Context(), strings.Join(args, " "))
		}

		handleErr(err)
		handleErr(showOne(cmd, result))
	},
}

var animeSeasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Anime of a season",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		season, year := currentSeason(time.Now())

		if s := lo.Must(cmd.Flags().GetString("season")); s != "" {
			season = anilist.MediaSeason(strings.ToUpper(s))
			if !lo.Contains(anilist.Seasons, season) {
				handleErr(fmt.Errorf("unknown season %q", s))
			}
		}

		if y := lo.Must(cmd.Flags().GetInt("year")); y != 0 {
			year = y
		}

		page, perPage := paging(cmd)
		results, err := newClient(cmd).Anime().BySeason(cmd.Context(), season, year, page, perPage)
		handleErr(err)
		handleErr(show(cmd, fmt.Sprintf("%s %d", season, year), results))
	},
}

// currentSeason maps a date onto the AniList season it falls in.
// December belongs to the winter season of the following year.
func currentSeason(now time.Time) (anilist.MediaSeason, int) {
	year := now.Year()

	switch now.Month() {
	case time.December:
		return anilist.SeasonWinter, year + 1
	case time.January, time.February:
		return anilist.SeasonWinter, year
	case time.March, time.April, time.May:
		return anilist.SeasonSpring, year
	case time.June, time.July, time.August:
		return anilist.SeasonSummer, year
	default:
		return anilist.SeasonFall, year
	}
}
