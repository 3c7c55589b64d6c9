// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIDs expands an id argument into its numeric ids. Accepted forms are a
// single int, a decimal string, a comma-separated string, or a slice of any
// of those. A missing, zero, or non-numeric id fails the whole call; name is
// the domain term used in error messages ("organization", "publication",
// "person").
func parseIDs(name string, arg any) ([]int, error) {
	if arg == nil {
		return nil, fmt.Errorf("supply a valid id for %s", name)
	}

	var raw []string
	switch v := arg.(type) {
	case int:
		return validateIDs(name, []int{v})
	case []int:
		return validateIDs(name, v)
	case string:
		for _, part := range strings.Split(v, ",") {
			raw = append(raw, strings.TrimSpace(part))
		}
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			raw = append(raw, strings.TrimSpace(fmt.Sprint(item)))
		}
	default:
		return nil, fmt.Errorf("unsupported %s id type %T", name, arg)
	}

	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s id number %q", name, s)
		}
		ids = append(ids, n)
	}
	return validateIDs(name, ids)
}

// validateIDs rejects empty lists and non-positive ids.
func validateIDs(name string, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("supply a valid id for %s", name)
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("supply a valid id for %s", name)
		}
	}
	return ids, nil
}

// expandRequests builds the request descriptor list: every id crossed with
// every request template, in id-major order.
func expandRequests(ids []int, templates []string) []string {
	reqs := make([]string, 0, len(ids)*len(templates))
	for _, id := range ids {
		for _, t := range templates {
			reqs = append(reqs, fmt.Sprintf(t, id))
		}
	}
	return reqs
}
