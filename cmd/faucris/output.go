// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/faucris/internal/bibtex"
	"github.com/pdiddy/faucris/internal/formatter"
	"github.com/pdiddy/faucris/pkg/types"
)

// addOutputFlags registers the shared rendering flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "table", "output format: table, json, bibtex, or csl")
	cmd.Flags().String("group-by", "", "attribute to group by")
	cmd.Flags().String("group-order", "desc", "group order: asc, desc, or a comma-separated key list")
	cmd.Flags().String("sort-by", "", "attribute to sort by within groups")
	cmd.Flags().String("sort-order", "asc", "sort order: asc or desc")
	cmd.Flags().Bool("mask-caps", true, "mask capitalized title tokens in BibTeX output")
}

func parseOrder(s string) (formatter.Order, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return formatter.Ascending, nil
	case "desc", "descending":
		return formatter.Descending, nil
	}
	return 0, fmt.Errorf("invalid order %q: want asc or desc", s)
}

// formatterFromFlags builds the group/sort configuration, or nil when the
// command asked for neither grouping nor sorting.
func formatterFromFlags(cmd *cobra.Command) (*formatter.Formatter, error) {
	groupBy, _ := cmd.Flags().GetString("group-by")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	if groupBy == "" && sortBy == "" {
		return nil, nil
	}

	groupOrderFlag, _ := cmd.Flags().GetString("group-order")
	var groupOrder formatter.GroupOrder
	if dir, err := parseOrder(groupOrderFlag); err == nil {
		groupOrder = formatter.ByDirection(dir)
	} else {
		// Not a direction: an explicit ordered key list.
		keys := strings.Split(groupOrderFlag, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}
		groupOrder = formatter.ByKeys(keys...)
	}

	sortOrderFlag, _ := cmd.Flags().GetString("sort-order")
	sortOrder, err := parseOrder(sortOrderFlag)
	if err != nil {
		return nil, err
	}

	return formatter.New(groupBy, groupOrder, sortBy, sortOrder), nil
}

// writeResult arranges and renders a merged collection per the command's
// output flags.
func writeResult(cmd *cobra.Command, w io.Writer, result *types.Collection) error {
	f, err := formatterFromFlags(cmd)
	if err != nil {
		return err
	}

	var groups []formatter.Group
	if f != nil {
		groups, err = f.Execute(result)
		if err != nil {
			return err
		}
	} else {
		// Ungrouped: a single anonymous group in insertion order.
		groups = []formatter.Group{{Entities: result.Entities()}}
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		writeTable(w, groups)
		return nil
	case "json":
		return writeJSON(w, f != nil, groups)
	case "bibtex":
		maskCaps, _ := cmd.Flags().GetBool("mask-caps")
		return writeBibTeX(w, groups, maskCaps)
	case "csl":
		return writeCSL(w, groups)
	}
	return fmt.Errorf("unknown format %q: want table, json, bibtex, or csl", format)
}

// writeTable prints a human-readable listing, one header line per named group.
func writeTable(w io.Writer, groups []formatter.Group) {
	total := 0
	for _, g := range groups {
		if g.Key != "" {
			fmt.Fprintf(w, "%s\n%s\n", g.Key, strings.Repeat("-", len(g.Key)))
		}
		for _, e := range g.Entities {
			fmt.Fprintf(w, "%-10s  %-4s  %s\n", e.ID, e.Get("publyear"), entityLabel(e))
			total++
		}
		if g.Key != "" {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "%d records\n", total)
}

// entityLabel is the one-line summary of a record: the title for
// publications, the name for organizations, truncated to table width.
func entityLabel(e *types.Entity) string {
	label := e.Get("cftitle")
	if e.Kind == types.KindOrganization {
		label = e.Get("name")
	}
	if len(label) > 60 {
		label = label[:57] + "..."
	}
	return label
}

func writeJSON(w io.Writer, grouped bool, groups []formatter.Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if grouped {
		type jsonGroup struct {
			Key      string          `json:"key"`
			Entities []*types.Entity `json:"entities"`
		}
		out := make([]jsonGroup, len(groups))
		for i, g := range groups {
			out[i] = jsonGroup{Key: g.Key, Entities: g.Entities}
		}
		return enc.Encode(out)
	}
	return enc.Encode(groups[0].Entities)
}

// writeBibTeX renders each publication as a BibTeX entry. Records without an
// exported author list are skipped with a warning: one incomplete record
// must not block the rest of the batch.
func writeBibTeX(w io.Writer, groups []formatter.Group, maskCaps bool) error {
	for _, g := range groups {
		for _, e := range g.Entities {
			entry, err := bibtex.ToEntry(e, maskCaps)
			if errors.Is(err, bibtex.ErrIncompleteAuthors) {
				fmt.Fprintf(os.Stderr, "warning: %s skipped: %v\n", e.ID, err)
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(w, bibtex.Format(entry))
		}
	}
	return nil
}

func writeCSL(w io.Writer, groups []formatter.Group) error {
	var items []bibtex.Item
	for _, g := range groups {
		for _, e := range g.Entities {
			item, err := bibtex.ItemFromEntity(e)
			if errors.Is(err, bibtex.ErrIncompleteAuthors) {
				fmt.Fprintf(os.Stderr, "warning: %s skipped: %v\n", e.ID, err)
				continue
			}
			if err != nil {
				return err
			}
			items = append(items, item)
		}
	}
	return bibtex.FormatCSL(items, w)
}
