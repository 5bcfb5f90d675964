// Package cmd implements the anikit command-line interface.
package cmd

import (
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var notificationTypes = []string{
	"ACTIVITY_MESSAGE",
	"ACTIVITY_REPLY",
	"FOLLOWING",
	"ACTIVITY_MENTION",
	"THREAD_COMMENT_MENTION",
	"THREAD_SUBSCRIBED",
	"THREAD_COMMENT_REPLY",
	"AIRING",
	"ACTIVITY_LIKE",
	"ACTIVITY_REPLY_LIKE",
	"THREAD_LIKE",
	"THREAD_COMMENT_LIKE",
	"ACTIVITY_REPLY_SUBSCRIBED",
	"RELATED_MEDIA_ADDITION",
	"MEDIA_DATA_CHANGE",
	"MEDIA_MERGE",
	"MEDIA_DELETION",
}

func init() {
	rootCmd.AddCommand(notificationCmd)
	notificationCmd.AddCommand(notificationListCmd, notificationUnreadCmd, notificationReadCmd)

	outputFlags(notificationListCmd, true)
	notificationListCmd.Flags().StringP("type", "t", "", "Only notifications of this type, e.g. AIRING")
	lo.Must0(notificationListCmd.RegisterFlagCompletionFunc("type", completeFrom(notificationTypes)))
}

var notificationCmd = &cobra.Command{
	Use:     "notification",
	Aliases: []string{"notif"},
	Short:   "Notifications of the authenticated user",
}

var notificationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications without marking them read",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			page, perPage = paging(cmd)
			kind          = strings.ToUpper(lo.Must(cmd.Flags().GetString("type")))
			notifications = newClient(cmd).Notification()
			results       []*anilist.Notification
			err           error
		)

		if kind != "" {
			results, err = notifications.ByType(cmd.Context(), kind, page, perPage)
		} else {
			results, err = notifications.List(cmd.Context(), page, perPage)
		}

		handleErr(err)
		handleErr(show(cmd, "Notifications", results))
	},
}

var notificationUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Print the number of unread notifications",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		count, err := newClient(cmd).Notification().UnreadCount(cmd.Context())
		handleErr(err)
		cmd.Println(count)
	},
}

var notificationReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Reset the unread notification count",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(newClient(cmd).Notification().MarkRead(cmd.Context()))
		cmd.Println(style.Fg(style.Green)("✔") + " notifications marked read")
	},
}
