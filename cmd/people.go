// Package cmd implements the anikit command-line interface.
package cmd

import (
	"github.com/anisan-cli/anikit/anilist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(characterCmd, staffCmd, studioCmd)

	characterCmd.AddCommand(
		pageCmd("popular", "Most favourited characters", (*anilist.Client).Character, (*anilist.CharacterEndpoint).Popular),
		pageCmd("birthdays", "Characters whose birthday is today", (*anilist.Client).Character, (*anilist.CharacterEndpoint).BirthdaysToday),
		searchCmd((*anilist.Client).Character, (*anilist.CharacterEndpoint).Search),
		getCmd("get <id>", "Show one character", (*anilist.Client).Character, (*anilist.CharacterEndpoint).ByID),
	)

	staffCmd.AddCommand(
		pageCmd("popular", "Most favourited staff", (*anilist.Client).Staff, (*anilist.StaffEndpoint).Popular),
		pageCmd("birthdays", "Staff whose birthday is today", (*anilist.Client).Staff, (*anilist.StaffEndpoint).BirthdaysToday),
		searchCmd((*anilist.Client).Staff, (*anilist.StaffEndpoint).Search),
		getCmd("get <id>", "Show one staff member", (*anilist.Client).Staff, (*anilist.StaffEndpoint).ByID),
	)

	studioCmd.AddCommand(
		pageCmd("popular", "Most favourited studios", (*anilist.Client).Studio, (*anilist.StudioEndpoint).Popular),
		searchCmd((*anilist.Client).Studio, (*anilist.StudioEndpoint).Search),
		getCmd("get <id>", "Show one studio", (*anilist.Client).Studio, (*anilist.StudioEndpoint).ByID),
	)
}

var characterCmd = &cobra.Command{
	Use:     "character",
	Aliases: []string{"char"},
	Short:   "Browse and search characters",
}

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Browse and search staff",
}

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Browse and search studios",
}
