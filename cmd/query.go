// Package cmd implements the anikit command-line interface.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/filesystem"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringArrayP("var", "V", nil, "Variable as key=value, repeatable. Numbers and booleans are detected")
	queryCmd.Flags().String("vars-json", "", "Variables as a JSON object, merged under --var")
	queryCmd.Flags().BoolP("raw", "r", false, "Print the data compactly")
}

var queryCmd = &cobra.Command{
	Use:   "query <graphql|@file|->",
	Short: "Send a raw GraphQL query and print its data",
	Long: `Send a raw GraphQL query and print the data object of the response.
The query is read from a file when prefixed with @ and from stdin when it is -.
Rate limited queries are retried according to the retry.* settings.`,
	Example: `  anikit query '{ Media(id: 1) { title { romaji } } }'
  anikit query @viewer.graphql
  anikit query 'query ($id: Int) { Media(id: $id) { id } }' --var id=1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query, err := readQuery(args[0], cmd.InOrStdin())
		handleErr(err)

		vars, err := parseVars(
			lo.Must(cmd.Flags().GetString("vars-json")),
			lo.Must(cmd.Flags().GetStringArray("var")),
		)
		handleErr(err)

		client := newClient(cmd)
		data, err := anilist.Retry(cmd.Context(), client.RetryPolicy(), func(ctx context.Context) (json.RawMessage, error) {
			return client.Query(ctx, query, vars)
		})
		handleErr(err)

		var out bytes.Buffer
		if lo.Must(cmd.Flags().GetBool("raw")) {
			err = json.Compact(&out, data)
		} else {
			err = json.Indent(&out, data, "", "  ")
		}
		handleErr(err)

		cmd.Println(out.String())
	},
}

// readQuery resolves the query argument: @path reads a file, - reads stdin.
func readQuery(arg string, stdin io.Reader) (string, error) {
	var (
		raw []byte
		err error
	)

	switch {
	case arg == "-":
		raw, err = io.ReadAll(stdin)
	case strings.HasPrefix(arg, "@"):
		raw, err = filesystem.API().ReadFile(strings.TrimPrefix(arg, "@"))
	default:
		raw = []byte(arg)
	}

	if err != nil {
		return "", err
	}

	query := strings.TrimSpace(string(raw))
	if query == "" {
		return "", errors.New("empty query")
	}

	return query, nil
}

// parseVars merges --vars-json with --var pairs, the pairs taking precedence.
// Returns nil when no variables were given.
func parseVars(asJSON string, pairs []string) (map[string]any, error) {
	vars := make(map[string]any)

	if asJSON != "" {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(asJSON), &decoded); err != nil {
			return nil, fmt.Errorf("--vars-json: %w", err)
		}

		for name, value := range decoded {
			vars[name] = value
		}
	}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--var %q: expected key=value", pair)
		}

		vars[name] = scalar(value)
	}

	if len(vars) == 0 {
		return nil, nil
	}

	return vars, nil
}

func scalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	default:
		return s
	}
}
