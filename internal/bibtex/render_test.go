// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	entry := &Entry{
		Key:  "faucris.1060854",
		Type: Article,
		Fields: map[string]string{
			"author": "Smith, Jane and Doe, John",
			"title":  "a study of things",
			"year":   "2020",
		},
	}

	got := Format(entry)
	want := "@article{faucris.1060854,\n" +
		"  author = {Smith, Jane and Doe, John},\n" +
		"  title = {a study of things},\n" +
		"  year = {2020}\n" +
		"}\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatDeterministic(t *testing.T) {
	entry := &Entry{
		Key:  "faucris.1",
		Type: Misc,
		Fields: map[string]string{
			"year": "2020", "title": "t", "note": "n", "author": "a",
		},
	}
	first := Format(entry)
	for i := 0; i < 10; i++ {
		if Format(entry) != first {
			t.Fatal("Format output varies between calls")
		}
	}
	if !strings.HasPrefix(first, "@misc{faucris.1,") {
		t.Errorf("Format() = %q", first)
	}
}

func TestFormatNoFields(t *testing.T) {
	entry := &Entry{Key: "faucris.2", Type: Misc, Fields: map[string]string{}}
	if got := Format(entry); got != "@misc{faucris.2\n}\n" {
		t.Errorf("Format() = %q", got)
	}
}
