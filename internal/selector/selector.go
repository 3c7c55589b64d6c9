// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector implements a declarative predicate filter over entity
// attributes. Criteria are given as a flat map whose keys encode the field
// and the comparison operator joined by a double underscore, e.g.
// {"publyear__gt": 2011}. Multiple criteria are combined with AND.
//
// All comparison is performed on the case-folded string form of both sides;
// this implicit coercion is a deliberate contract of the web service data
// model, where every attribute is a string.
package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/faucris/pkg/types"
)

// Op is a comparison operator. The set is closed: criteria naming any other
// operator are rejected at construction time.
type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpLt       Op = "lt"
	OpLe       Op = "le"
	OpGt       Op = "gt"
	OpGe       Op = "ge"
	OpContains Op = "contains"
)

// compare applies the operator to a case-folded attribute value and
// reference value. Ordering operators use lexicographic string comparison.
func (o Op) compare(value, ref string) bool {
	switch o {
	case OpEq:
		return value == ref
	case OpNe:
		return value != ref
	case OpLt:
		return value < ref
	case OpLe:
		return value <= ref
	case OpGt:
		return value > ref
	case OpGe:
		return value >= ref
	case OpContains:
		return strings.Contains(value, ref)
	}
	return false
}

func validOp(o Op) bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpContains:
		return true
	}
	return false
}

// clause is one field-operator-reference triple.
type clause struct {
	field string
	op    Op
	ref   string
}

// Selector is an AND-combined set of comparison clauses.
type Selector struct {
	clauses []clause
}

// New parses a criteria map into a Selector. Keys are split on the first
// "__"; a key without the separator or with an unknown operator name is a
// construction error. Values are coerced to their string form and folded to
// lower case.
func New(criteria map[string]any) (*Selector, error) {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := &Selector{}
	for _, k := range keys {
		parts := strings.Split(strings.ToLower(k), "__")
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid criterion %q: missing __ operator separator", k)
		}
		op := Op(parts[1])
		if !validOp(op) {
			return nil, fmt.Errorf("invalid criterion %q: unsupported operator %q", k, parts[1])
		}
		s.clauses = append(s.clauses, clause{
			field: parts[0],
			op:    op,
			ref:   strings.ToLower(fmt.Sprint(criteria[k])),
		})
	}
	return s, nil
}

// Evaluate reports whether the entity satisfies every clause.
//
// A clause whose field is entirely absent from the entity passes vacuously.
// This permissive policy is intentional and load-bearing: retrieval filters
// are applied to records whose attribute sets vary, and a filter on an
// attribute a record does not carry must not exclude that record.
func (s *Selector) Evaluate(e *types.Entity) bool {
	for _, c := range s.clauses {
		v, ok := e.Attr(c.field)
		if !ok {
			continue
		}
		if !c.op.compare(strings.ToLower(v), c.ref) {
			return false
		}
	}
	return true
}
