// Package cmd implements the anikit command-line interface.
package cmd

import (
	"fmt"
	"net/url"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anikit/auth"
	"github.com/anisan-cli/anikit/open"
	"github.com/anisan-cli/anikit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
	authLogoutCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	authLoginCmd.Flags().String("client-id", "", "Open the implicit grant page of this AniList API client first")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the AniList access token",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an access token in the system keyring",
	Long: `Store an access token in the system keyring.
Create a client at https://anilist.co/settings/developer and paste the token it issues.
Without --token you are prompted for it. With --client-id the authorization page
of that client is opened in the browser, and it shows the token after you approve.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		token, _ := cmd.Flags().GetString("token")

		if clientID := lo.Must(cmd.Flags().GetString("client-id")); clientID != "" && token == "" {
			u := authorizeURL(clientID)
			cmd.Println(style.Faint("opening " + u))
			if err := open.URL(u); err != nil {
				cmd.PrintErrln(err)
			}
		}

		if token == "" {
			prompt := &survey.Password{Message: "AniList access token:"}
			handleErr(survey.AskOne(prompt, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.Save(token))

		viewer, err := newClient(cmd).Authenticated(token).User().Viewer(cmd.Context())
		if err != nil {
			cmd.PrintErrln(style.Fg(style.Yellow)("token saved, but it could not be verified: " + err.Error()))
			return
		}

		cmd.Printf("%s logged in as %s\n", style.Fg(style.Green)("✔"), style.Fg(style.Purple)(viewer.Name))
	},
}

// authorizeURL is the implicit grant page that shows a token for clientID.
func authorizeURL(clientID string) string {
	return "https://anilist.co/api/v2/oauth/authorize?" + url.Values{
		"client_id":     {clientID},
		"response_type": {"token"},
	}.Encode()
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored access token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		confirmed := lo.Must(cmd.Flags().GetBool("yes"))
		if !confirmed {
			prompt := &survey.Confirm{Message: "Remove the stored AniList token?", Default: true}
			handleErr(survey.AskOne(prompt, &confirmed))
		}

		if !confirmed {
			return
		}

		handleErr(auth.Delete())
		cmd.Printf("%s token removed\n", style.Fg(style.Green)("✔"))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the token comes from and whom it belongs to",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flag, _ := cmd.Flags().GetString("token")
		_, source := auth.Resolve(flag)

		if source == auth.SourceNone {
			cmd.Println(style.Faint("not logged in"))
			return
		}

		viewer, err := newClient(cmd).User().Viewer(cmd.Context())
		handleErr(err)

		cmd.Printf("logged in as %s (token from %s)\n", style.Fg(style.Purple)(viewer.Name), source)
		cmd.Println(style.Faint(fmt.Sprintf("%d unread notifications", viewer.UnreadNotificationCount)))
	},
}
