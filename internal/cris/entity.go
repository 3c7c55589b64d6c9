// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"strings"

	"github.com/pdiddy/faucris/pkg/types"
)

// Attribute markers used by the web service.
const (
	// altLanguage marks an attribute carrying the alternate-language
	// (English) variant of a value. Such attributes are stored under
	// "<name>_en" instead of overwriting the base key.
	altLanguage = "1"

	// choiceGroup marks an attribute whose value lives in the
	// additionalInfo sub-node rather than the default data sub-node.
	choiceGroup = "choicegroup"
)

// newEntity normalizes one raw infoObject record into an Entity.
//
// Normalization is best effort: a malformed attribute child (missing name,
// missing value node) is dropped without aborting the record, so a partially
// broken infoObject still yields an entity with the attributes that could be
// read. Value nodes that exist but carry no text produce an attribute that
// is present with an empty string.
func newEntity(rec *Record, kind types.Kind) *types.Entity {
	e := &types.Entity{
		Kind:       kind,
		Attributes: make(map[string]string),
	}

	if v, ok := rec.Attr("id"); ok {
		e.ID = v
	}
	if v, ok := rec.Attr("createdOn"); ok {
		e.CreatedOn = v
	}
	if v, ok := rec.Attr("updatedOn"); ok {
		e.UpdatedOn = v
	}

	for i := range rec.node.Children {
		c := &rec.node.Children[i]

		// Skip "relation" and other non-attribute children.
		if !strings.EqualFold(c.XMLName.Local, "attribute") {
			continue
		}

		name, ok := c.attr("name")
		if !ok || name == "" {
			continue
		}
		name = strings.ToLower(name)

		if lang, _ := c.attr("language"); lang == altLanguage {
			name += "_en"
		}

		valueNode := "data"
		if disp, _ := c.attr("disposition"); disp == choiceGroup {
			valueNode = "additionalInfo"
		}

		v, ok := c.firstChild(valueNode)
		if !ok {
			// Value location absent: attribute stays unset.
			continue
		}
		e.Attributes[name] = v.Text
	}

	return e
}
