// Package cmd implements the anikit command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// schemaModels maps the names accepted by `anikit schema` to the result types printed by --json.
var schemaModels = map[string]any{
	"anime":          &anilist.Anime{},
	"manga":          &anilist.Manga{},
	"character":      &anilist.Character{},
	"staff":          &anilist.Staff{},
	"studio":         &anilist.Studio{},
	"user":           &anilist.User{},
	"list":           &anilist.MediaList{},
	"airing":         &anilist.AiringSchedule{},
	"review":         &anilist.Review{},
	"recommendation": &anilist.Recommendation{},
	"thread":         &anilist.Thread{},
	"comment":        &anilist.ThreadComment{},
	"activity":       &anilist.Activity{},
	"reply":          &anilist.ActivityReply{},
	"notification":   &anilist.Notification{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().Bool("list", false, "Wrap the schema in an array, as printed by list commands")
}

func modelNames() []string {
	names := lo.Keys(schemaModels)
	slices.Sort(names)
	return names
}

// reflectSchema builds the JSON schema of a model registered in schemaModels.
func reflectSchema(name string, list bool) (*jsonschema.Schema, error) {
	model, ok := schemaModels[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown model %q, expected one of %s", name, strings.Join(modelNames(), ", "))
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		if t.Name() == "" {
			return ""
		}
		return "anilist." + t.Name()
	}

	if list {
		return reflector.ReflectFromType(reflect.SliceOf(reflect.TypeOf(model))), nil
	}

	return reflector.Reflect(model), nil
}

var schemaCmd = &cobra.Command{
	Use:   "schema <model>",
	Short: "Print the JSON schema of a result model",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeFrom(modelNames())(cmd, args, toComplete)
	},
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := reflectSchema(args[0], lo.Must(cmd.Flags().GetBool("list")))
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
