// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"strings"
	"unicode"

	"github.com/pdiddy/faucris/pkg/types"
)

// AuthorName is one parsed author or editor name.
type AuthorName struct {
	Family string
	Given  string
}

// authorPairs parses the pipe-delimited, colon-separated exported author
// attribute ("Last:First|Last:First"). The attribute is exported
// asynchronously by the web service, so it may be missing on fresh records;
// that yields ErrIncompleteAuthors.
func authorPairs(e *types.Entity) ([]AuthorName, error) {
	raw, ok := e.Attr("exportauthors")
	if !ok {
		return nil, ErrIncompleteAuthors
	}

	var names []AuthorName
	for _, pair := range strings.Split(raw, "|") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		family, given, _ := strings.Cut(pair, ":")
		names = append(names, AuthorName{Family: family, Given: given})
	}
	if len(names) == 0 {
		return nil, ErrIncompleteAuthors
	}
	return names, nil
}

// authorString joins the parsed names as "Last, First and Last, First".
func authorString(e *types.Entity) (string, error) {
	names, err := authorPairs(e)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.Family + ", " + n.Given
	}
	return strings.Join(parts, " and "), nil
}

// maskCapitals wraps every word token that is neither entirely lower-case
// nor entirely numeric in a brace pair, collapsing doubled braces, so that
// citation formatters which lower-case titles leave those tokens alone.
func maskCapitals(title string) string {
	var b strings.Builder
	runes := []rune(title)
	for i := 0; i < len(runes); {
		if !wordRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && wordRune(runes[j]) {
			j++
		}
		token := string(runes[i:j])
		if needsMask(token) {
			b.WriteString("{" + token + "}")
		} else {
			b.WriteString(token)
		}
		i = j
	}

	masked := strings.ReplaceAll(b.String(), "{{", "{")
	return strings.ReplaceAll(masked, "}}", "}")
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// needsMask reports whether a token must survive lower-casing: anything that
// is not all lower-case letters and not a plain number.
func needsMask(token string) bool {
	allDigit := true
	lower := true
	hasLetter := false
	for _, r := range token {
		if !unicode.IsDigit(r) {
			allDigit = false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsLower(r) {
				lower = false
			}
		}
	}
	isLower := hasLetter && lower
	return !isLower && !allDigit
}
