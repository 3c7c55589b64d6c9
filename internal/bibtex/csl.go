package bibtex

import (
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/faucris/pkg/types"
)

// Item represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type Item struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Title    string `yaml:"title"`
	Author   []Name `yaml:"author,omitempty"`
	Abstract string `yaml:"abstract,omitempty"`
	Issued   *Date  `yaml:"issued,omitempty"`
	DOI      string `yaml:"DOI,omitempty"`
	URL      string `yaml:"URL,omitempty"`
	Keywords string `yaml:"keyword,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// Date represents a date in CSL format using date-parts.
type Date struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps record types to their CSL item types.
var cslTypes = map[Type]string{
	Article:       "article-journal",
	Book:          "book",
	InCollection:  "chapter",
	InProceedings: "paper-conference",
	PhDThesis:     "thesis",
	MastersThesis: "thesis",
	Unpublished:   "manuscript",
	Misc:          "document",
}

// ItemFromEntity converts a publication entity to a CSL item. Entities
// without an exported author list yield ErrIncompleteAuthors, mirroring
// ToEntry.
func ItemFromEntity(e *types.Entity) (Item, error) {
	names, err := authorPairs(e)
	if err != nil {
		return Item{}, err
	}

	item := Item{
		ID:       "faucris." + e.ID,
		Type:     cslTypes[resolveType(e)],
		Title:    e.Get("cftitle"),
		Abstract: stripParagraphMarkup(e.Get("cfabstr")),
		DOI:      e.Get("doi"),
		URL:      e.Get("cfuri"),
		Keywords: e.Get("keywords"),
	}

	for _, n := range names {
		item.Author = append(item.Author, Name{Family: n.Family, Given: n.Given})
	}

	if year, err := strconv.Atoi(e.Get("publyear")); err == nil {
		item.Issued = &Date{DateParts: [][]int{{year}}}
	}

	return item, nil
}

// FormatCSL writes the items as a CSL-YAML list to w.
func FormatCSL(items []Item, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}
