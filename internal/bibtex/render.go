// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders an entry as BibTeX markup. Fields are emitted in sorted
// order so output is deterministic.
func Format(e *Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s", e.Type, e.Key)

	fields := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	for _, k := range fields {
		fmt.Fprintf(&b, ",\n  %s = {%s}", k, e.Fields[k])
	}
	b.WriteString("\n}\n")
	return b.String()
}
