// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "Fetch publication records",
}

var byOrgaCmd = &cobra.Command{
	Use:   "by-orga [organization ids]",
	Short: "Fetch publications related to one or more organizations",
	Long: `by-orga resolves publications through both the automatic and the direct
organization relation and merges the results. Root and subroot level
organizational units are rejected unless --skip-root-check is given.

Ids may be passed as separate arguments or comma-separated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runByOrga,
}

var byIDCmd = &cobra.Command{
	Use:   "by-id [publication ids]",
	Short: "Fetch publications by their own ids",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runByID,
}

var byPersCmd = &cobra.Command{
	Use:   "by-pers [person ids]",
	Short: "Fetch publications related to one or more persons",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runByPers,
}

func init() {
	for _, cmd := range []*cobra.Command{byOrgaCmd, byIDCmd, byPersCmd} {
		addOutputFlags(cmd)
		publicationsCmd.AddCommand(cmd)
	}
	byOrgaCmd.Flags().StringArray("filter", nil, "filter criterion field__operator=value (repeatable, AND-combined)")
	byPersCmd.Flags().StringArray("filter", nil, "filter criterion field__operator=value (repeatable, AND-combined)")
	byOrgaCmd.Flags().Bool("skip-root-check", false, "allow querying root and subroot level organizations")

	rootCmd.AddCommand(publicationsCmd)
}

// joinIDs turns the positional arguments into the comma-separated id form
// the client expands.
func joinIDs(args []string) string {
	return strings.Join(args, ",")
}

func runByOrga(cmd *cobra.Command, args []string) error {
	filter, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	skip, _ := cmd.Flags().GetBool("skip-root-check")

	result, err := newClient().PublicationsByOrga(cmd.Context(), joinIDs(args), filter, skip)
	if err != nil {
		return err
	}
	return writeResult(cmd, os.Stdout, result)
}

func runByID(cmd *cobra.Command, args []string) error {
	result, err := newClient().PublicationsByID(cmd.Context(), joinIDs(args))
	if err != nil {
		return err
	}
	return writeResult(cmd, os.Stdout, result)
}

func runByPers(cmd *cobra.Command, args []string) error {
	filter, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	result, err := newClient().PublicationsByPers(cmd.Context(), joinIDs(args), filter)
	if err != nil {
		return err
	}
	return writeResult(cmd, os.Stdout, result)
}

// criteriaFromFlags parses repeated --filter flags into a criteria map, or
// nil when no filters are given.
func criteriaFromFlags(cmd *cobra.Command) (any, error) {
	pairs, _ := cmd.Flags().GetStringArray("filter")
	if len(pairs) == 0 {
		return nil, nil
	}

	criteria := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --filter %q: want field__operator=value", p)
		}
		criteria[key] = value
	}
	return criteria, nil
}
