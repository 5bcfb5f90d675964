// Package cmd implements the anikit command-line interface.
package cmd

import (
	"context"
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/markup"
	"github.com/spf13/cobra"
)

// The builders below turn endpoint method expressions into commands,
// e.g. pageCmd("popular", "...", (*anilist.Client).Anime, (*anilist.AnimeEndpoint).Popular).

func pageCmd[E, T any](
	use, short string,
	endpoint func(*anilist.Client) E,
	list func(E, context.Context, int, int) ([]*T, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			page, perPage := paging(cmd)
			results, err := list(endpoint(newClient(cmd)), cmd.Context(), page, perPage)
			handleErr(err)
			handleErr(show(cmd, titleOf(cmd), results))
		},
	}

	outputFlags(cmd, true)
	return cmd
}

func searchCmd[E, T any](
	endpoint func(*anilist.Client) E,
	search func(E, context.Context, string, int, int) ([]*T, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search by name",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			page, perPage := paging(cmd)
			query := strings.Join(args, " ")
			results, err := search(endpoint(newClient(cmd)), cmd.Context(), query, page, perPage)
			handleErr(err)
			handleErr(show(cmd, query, results))
		},
	}

	outputFlags(cmd, true)
	return cmd
}

// idPageCmd lists results related to the id given as the only argument.
func idPageCmd[E, T any](
	use, short string,
	endpoint func(*anilist.Client) E,
	list func(E, context.Context, int, int, int) ([]*T, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := intArg(args[0], "id")
			handleErr(err)

			page, perPage := paging(cmd)
			results, err := list(endpoint(newClient(cmd)), cmd.Context(), id, page, perPage)
			handleErr(err)
			handleErr(show(cmd, titleOf(cmd), results))
		},
	}

	outputFlags(cmd, true)
	return cmd
}

func getCmd[E, T any](
	use, short string,
	endpoint func(*anilist.Client) E,
	get func(E, context.Context, int) (*T, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := intArg(args[0], "id")
			handleErr(err)

			result, err := get(endpoint(newClient(cmd)), cmd.Context(), id)
			handleErr(err)
			handleErr(showOne(cmd, result))
		},
	}

	outputFlags(cmd, false)
	return cmd
}

// titleOf names the browser after the command path, e.g. "Anime popular".
func titleOf(cmd *cobra.Command) string {
	if cmd.HasParent() && cmd.Parent().HasParent() {
		return markup.Capitalize(cmd.Parent().Name()) + " " + cmd.Name()
	}
	return markup.Capitalize(cmd.Name())
}
