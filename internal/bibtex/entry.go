// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex maps publication entities into structured bibliographic
// records and serializes them. The mapping (ToEntry) is independent of any
// output markup; rendering to BibTeX text and CSL-YAML are separate
// downstream steps.
package bibtex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/faucris/pkg/types"
)

// ErrIncompleteAuthors reports that a publication carries no exported author
// list. Such a record is incomplete and yields no citation at all rather
// than a partial one.
var ErrIncompleteAuthors = errors.New("publication has no exported author list")

// School is the institution recorded for thesis entries. Every thesis in
// CRIS belongs to this university.
const School = "Friedrich-Alexander-Universität Erlangen-Nürnberg"

// publicWebBase is the human-facing record URL, used as the note for
// unpublished entries that have none.
const publicWebBase = "https://cris.fau.de/converis/publicweb/Publication/"

// Type is a bibliographic record type. The set is closed; unmapped
// publication types resolve to Misc, never to an error.
type Type string

const (
	Article       Type = "article"
	Book          Type = "book"
	InCollection  Type = "incollection"
	InProceedings Type = "inproceedings"
	PhDThesis     Type = "phdthesis"
	MastersThesis Type = "masterthesis"
	Misc          Type = "misc"
	Unpublished   Type = "unpublished"
)

// Entry is one structured citation record.
type Entry struct {
	// Key is the citation key, derived from the record identity
	// ("faucris.<id>").
	Key string

	// Type is the resolved record type.
	Type Type

	// Fields maps citation field names to values. A field is present only
	// when its source attribute exists; a present-but-empty attribute
	// yields a present-but-empty field.
	Fields map[string]string
}

// resolveType maps the entity's publication type to a record type. The
// thesis type needs a second lookup on the thesis subtype.
func resolveType(e *types.Entity) Type {
	switch strings.ToLower(e.Get("publication type")) {
	case "journal article":
		return Article
	case "book", "editorial":
		return Book
	case "article in edited volumes":
		return InCollection
	case "conference contribution":
		return InProceedings
	case "unpublished":
		return Unpublished
	case "thesis":
		switch e.Get("publication thesis subtype") {
		case "Dissertation":
			return PhDThesis
		case "Masterarbeit", "Diplomarbeit":
			return MastersThesis
		}
	}
	return Misc
}

// ToEntry maps a publication entity's attribute bag into a citation record.
// maskCaps enables capitalization masking of the title for downstream
// formatters that lower-case titles.
//
// Entities without an exported author list yield ErrIncompleteAuthors;
// callers mapping a batch skip those records and continue.
func ToEntry(e *types.Entity, maskCaps bool) (*Entry, error) {
	if e.Kind != types.KindPublication {
		return nil, fmt.Errorf("cannot cite %s entity %s", e.Kind, e.ID)
	}

	authorEditor, err := authorString(e)
	if err != nil {
		return nil, err
	}

	typ := resolveType(e)
	f := make(map[string]string)
	setIf := func(field, attr string) {
		if v, ok := e.Attr(attr); ok {
			f[field] = v
		}
	}

	// Fields valid for all types.
	setIf("year", "publyear")
	setIf("title", "cftitle")
	setIf("note", "note")
	setIf("keywords", "keywords")
	setIf("abstract", "cfabstr")
	setIf("month", "monthcg")
	setIf("url", "cfuri")
	setIf("peerreviewed", "peerreviewed")
	setIf("faupublication", "fau publikation")
	setIf("doi", "doi")

	if v, ok := f["abstract"]; ok {
		f["abstract"] = stripParagraphMarkup(v)
	}

	switch typ {
	case Article:
		setIf("journal", "journalname")
		setIf("volume", "book volume")
		setIf("pages", "pagesrange")
	case Book, InCollection, InProceedings:
		setIf("publisher", "publisher")
		setIf("editor", "editor")
		setIf("isbn", "cfisbn")
		setIf("volume", "book volume")
		setIf("series", "cfseries")
		setIf("edition", "cfedition")
		setIf("address", "cfcitytown")
		setIf("pages", "pagesrange")
	}

	if typ == InCollection {
		setIf("booktitle", "edited volumes")
	}

	if conferenceLike(e, typ) {
		// The proceedings title is preferred; the event title is the
		// fall-back when it is absent or empty.
		if bt, ok := e.Attr("conference proceedings title"); ok && bt != "" {
			f["booktitle"] = bt
		} else {
			setIf("booktitle", "event title")
		}
		setIf("venue", "event location")
		if start, ok := e.Attr("event start date"); ok {
			f["date"] = start
			if end, ok := e.Attr("event end date"); ok {
				f["date"] = start + "/" + end
			}
		}
	}

	if typ == PhDThesis || typ == MastersThesis {
		f["school"] = School
	}

	if typ == Unpublished && f["note"] == "" {
		f["note"] = publicWebBase + e.ID
	}

	// The author relation completeness flag is set only on records whose
	// relations were fully exported. Without it, mark the author list open
	// and point readers at the raw source authors.
	if !e.Has("complete author relations") {
		authorEditor += " and et al."
		f["support_note"] = "Author relations incomplete. You may find additional data in field 'author_hint'"
		f["author_hint"] = e.Get("srcauthors")
	}

	if strings.ToLower(e.Get("publication type")) == "editorial" {
		f["editor"] = authorEditor
	} else {
		f["author"] = authorEditor
	}

	if maskCaps {
		if title, ok := f["title"]; ok {
			f["title"] = maskCapitals(title)
		}
	}

	return &Entry{
		Key:    "faucris." + e.ID,
		Type:   typ,
		Fields: f,
	}, nil
}

// conferenceLike reports whether the record takes conference fields: real
// proceedings contributions, and unpublished records that are declared
// future conference contributions.
func conferenceLike(e *types.Entity, typ Type) bool {
	if typ == InProceedings {
		return true
	}
	return typ == Unpublished &&
		strings.ToLower(e.Get("futurepublicationtype")) == "conference contribution"
}

// stripParagraphMarkup removes the <p>...</p> wrapping the web service puts
// around abstracts.
func stripParagraphMarkup(s string) string {
	if !strings.HasPrefix(s, "<p>") {
		return s
	}
	s = strings.TrimPrefix(s, "<p>")
	s = strings.TrimSuffix(strings.TrimSpace(s), "</p>")
	return strings.TrimSpace(s)
}
