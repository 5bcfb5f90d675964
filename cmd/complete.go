// Package cmd implements the anikit command-line interface.
package cmd

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// completeFrom completes fuzzily against a fixed set of values.
func completeFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return fuzzy.FindFold(toComplete, values), cobra.ShellCompDirectiveNoFileComp
	}
}

func enumValues[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return string(v) })
}
