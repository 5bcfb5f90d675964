// Package cmd implements the anikit command-line interface.
package cmd

import (
	"github.com/anisan-cli/anikit/anilist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reviewCmd, recommendationCmd, forumCmd, activityCmd)

	reviewCmd.AddCommand(
		pageCmd("recent", "Newest reviews", (*anilist.Client).Review, (*anilist.ReviewEndpoint).Recent),
		pageCmd("top", "Highest rated reviews", (*anilist.Client).Review, (*anilist.ReviewEndpoint).TopRated),
		idPageCmd("media <media-id>", "Reviews of one title", (*anilist.Client).Review, (*anilist.ReviewEndpoint).ForMedia),
		getCmd("get <id>", "Show one review", (*anilist.Client).Review, (*anilist.ReviewEndpoint).ByID),
	)

	recommendationCmd.AddCommand(
		pageCmd("recent", "Newest recommendations", (*anilist.Client).Recommendation, (*anilist.RecommendationEndpoint).Recent),
		pageCmd("top", "Highest rated recommendations", (*anilist.Client).Recommendation, (*anilist.RecommendationEndpoint).TopRated),
		idPageCmd("media <media-id>", "Recommendations for one title", (*anilist.Client).Recommendation, (*anilist.RecommendationEndpoint).ForMedia),
	)

	forumCmd.AddCommand(
		pageCmd("recent", "Recently active threads", (*anilist.Client).Forum, (*anilist.ForumEndpoint).RecentThreads),
		searchCmd((*anilist.Client).Forum, (*anilist.ForumEndpoint).SearchThreads),
		getCmd("thread <id>", "Show one thread", (*anilist.Client).Forum, (*anilist.ForumEndpoint).ThreadByID),
	)

	activityCmd.AddCommand(
		pageCmd("recent", "Recent public activity", (*anilist.Client).Activity, (*anilist.ActivityEndpoint).Recent),
		pageCmd("following", "Activity of users you follow", (*anilist.Client).Activity, (*anilist.ActivityEndpoint).Following),
		idPageCmd("user <user-id>", "Activity of one user", (*anilist.Client).Activity, (*anilist.ActivityEndpoint).ByUser),
	)
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Browse reviews",
}

var recommendationCmd = &cobra.Command{
	Use:     "recommendation",
	Aliases: []string{"rec"},
	Short:   "Browse recommendations",
}

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Browse forum threads",
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Browse activity feeds",
}
