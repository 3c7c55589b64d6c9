// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package formatter arranges a merged entity collection into an ordered list
// of groups of ordered entities, by up to two attributes.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/faucris/pkg/types"
)

// Order is a sort direction.
type Order int

const (
	Ascending Order = iota + 1
	Descending
)

// GroupOrder selects how group keys are arranged: either by direction, or by
// an explicit ordered list of key values.
type GroupOrder struct {
	dir      Order
	keys     []string
	explicit bool
}

// ByDirection orders group keys lexicographically in the given direction.
func ByDirection(o Order) GroupOrder {
	return GroupOrder{dir: o}
}

// ByKeys orders groups by the given key values. Keys present in the data but
// not listed are appended afterwards in ascending order; listed keys absent
// from the data are skipped, so no empty groups are emitted.
func ByKeys(keys ...string) GroupOrder {
	folded := make([]string, len(keys))
	for i, k := range keys {
		folded[i] = strings.ToLower(k)
	}
	return GroupOrder{keys: folded, explicit: true}
}

// Group is one ordered bucket of the formatted output.
type Group struct {
	Key      string
	Entities []*types.Entity
}

// Formatter is an immutable group/sort configuration.
type Formatter struct {
	groupBy    string
	groupOrder GroupOrder
	sortBy     string
	sortOrder  Order
}

// New builds a Formatter. groupBy empty means no semantic grouping: all
// entities fall into one group keyed by the sortBy field name. sortBy empty
// preserves insertion order within each group. A zero groupOrder defaults to
// descending and a zero sortOrder to ascending.
func New(groupBy string, groupOrder GroupOrder, sortBy string, sortOrder Order) *Formatter {
	if !groupOrder.explicit && groupOrder.dir == 0 {
		groupOrder.dir = Descending
	}
	if sortOrder == 0 {
		sortOrder = Ascending
	}
	return &Formatter{
		groupBy:    strings.ToLower(groupBy),
		groupOrder: groupOrder,
		sortBy:     strings.ToLower(sortBy),
		sortOrder:  sortOrder,
	}
}

// Execute arranges the collection. Grouping requires the groupBy attribute
// on every entity and fails when one lacks it; sorting likewise fails when
// any entity in a group lacks the sortBy attribute. Running Execute twice on
// the same collection yields identical output.
func (f *Formatter) Execute(c *types.Collection) ([]Group, error) {
	buckets := make(map[string][]*types.Entity)
	for _, e := range c.Entities() {
		var key string
		if f.groupBy != "" {
			v, ok := e.Attr(f.groupBy)
			if !ok {
				return nil, fmt.Errorf("selected attribute not found: %s", f.groupBy)
			}
			key = strings.ToLower(v)
		} else {
			// Pure sort mode: a single group named after the sort field.
			key = f.sortBy
		}
		buckets[key] = append(buckets[key], e)
	}

	keylist := f.orderedKeys(buckets)

	out := make([]Group, 0, len(keylist))
	for _, k := range keylist {
		entities, ok := buckets[k]
		if !ok {
			// Listed key with no matching data: no empty group.
			continue
		}
		sorted, err := f.sortGroup(entities)
		if err != nil {
			return nil, err
		}
		out = append(out, Group{Key: k, Entities: sorted})
	}
	return out, nil
}

// orderedKeys arranges the group keys per the group order configuration.
func (f *Formatter) orderedKeys(buckets map[string][]*types.Entity) []string {
	if !f.groupOrder.explicit {
		keys := make([]string, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if f.groupOrder.dir == Descending {
			for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
		return keys
	}

	keys := append([]string(nil), f.groupOrder.keys...)
	listed := make(map[string]bool, len(keys))
	for _, k := range keys {
		listed[k] = true
	}

	// Data may hold keys beyond the explicit list; append them at the end
	// rather than dropping their entities.
	var missing []string
	for k := range buckets {
		if !listed[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return append(keys, missing...)
}

// sortGroup orders one group by the sortBy attribute, or keeps insertion
// order when no sort field is configured.
func (f *Formatter) sortGroup(entities []*types.Entity) ([]*types.Entity, error) {
	sorted := append([]*types.Entity(nil), entities...)
	if f.sortBy == "" {
		return sorted, nil
	}

	for _, e := range sorted {
		if !e.Has(f.sortBy) {
			return nil, fmt.Errorf("cannot sort by unset attribute: %s", f.sortBy)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Get(f.sortBy), sorted[j].Get(f.sortBy)
		if f.sortOrder == Descending {
			return a > b
		}
		return a < b
	})
	return sorted, nil
}
