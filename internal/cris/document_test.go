// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"strings"
	"testing"

	"github.com/pdiddy/faucris/pkg/types"
)

const samplePublicationXML = `<?xml version="1.0" encoding="UTF-8"?>
<infoObjects>
  <infoObject type="Publication" id="1031963" createdOn="2015-04-10" updatedOn="2016-02-01">
    <attribute name="Publyear" language="0" disposition="">
      <data>2020</data>
    </attribute>
    <attribute name="cfTitle" language="0"><data>Eine Untersuchung</data></attribute>
    <attribute name="cfTitle" language="1"><data>A Study</data></attribute>
    <attribute name="Publication type" language="0" disposition="choicegroup">
      <additionalInfo>Journal Article</additionalInfo>
    </attribute>
    <attribute name="srcAuthors" language="0"><data/></attribute>
    <attribute name="broken" language="0"></attribute>
    <attribute language="0"><data>nameless</data></attribute>
    <relation id="99" type="PUBL_has_ORGA"/>
  </infoObject>
  <infoObject type="Organisation" id="142441">
    <attribute name="FAU_Org_Nr" language="0"><data>14240000</data></attribute>
  </infoObject>
</infoObjects>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(samplePublicationXML))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

func TestInfoObjectsSplitsByType(t *testing.T) {
	doc := parseSample(t)

	pubs := doc.InfoObjects("Publication")
	if len(pubs) != 1 {
		t.Fatalf("Publication records = %d, want 1", len(pubs))
	}
	orgas := doc.InfoObjects("Organisation")
	if len(orgas) != 1 {
		t.Fatalf("Organisation records = %d, want 1", len(orgas))
	}
	if id, _ := orgas[0].Attr("id"); id != "142441" {
		t.Errorf("organisation id = %q", id)
	}
	if none := doc.InfoObjects("Person"); len(none) != 0 {
		t.Errorf("Person records = %d, want 0", len(none))
	}
}

func TestParseDocumentInvalidXML(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader("<infoObjects><unclosed>")); err == nil {
		t.Error("ParseDocument accepted invalid XML")
	}
}

func TestNewEntityNormalization(t *testing.T) {
	doc := parseSample(t)
	rec := doc.InfoObjects("Publication")[0]
	e := newEntity(rec, types.KindPublication)

	if e.ID != "1031963" {
		t.Errorf("ID = %q", e.ID)
	}
	if e.Kind != types.KindPublication {
		t.Errorf("Kind = %q", e.Kind)
	}
	if e.CreatedOn != "2015-04-10" || e.UpdatedOn != "2016-02-01" {
		t.Errorf("timestamps = %q / %q", e.CreatedOn, e.UpdatedOn)
	}

	// Attribute names are case-folded.
	if got := e.Get("publyear"); got != "2020" {
		t.Errorf("publyear = %q", got)
	}

	// The alternate-language variant lives under its own suffixed key.
	if got := e.Get("cftitle"); got != "Eine Untersuchung" {
		t.Errorf("cftitle = %q", got)
	}
	if got := e.Get("cftitle_en"); got != "A Study" {
		t.Errorf("cftitle_en = %q", got)
	}

	// Choice groups read from additionalInfo.
	if got := e.Get("publication type"); got != "Journal Article" {
		t.Errorf("publication type = %q", got)
	}

	// An empty data node yields a present-but-empty attribute.
	if v, ok := e.Attr("srcauthors"); !ok || v != "" {
		t.Errorf("srcauthors = %q, %v; want empty string, present", v, ok)
	}

	// Malformed attribute children are dropped, not fatal: no value node,
	// no name marker, and the relation element are all skipped.
	if e.Has("broken") {
		t.Error("attribute without a value node should stay unset")
	}
	if e.Has("nameless") || e.Has("") {
		t.Error("attribute without a name should stay unset")
	}
}

func TestNewEntityWithoutIdentity(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<infoObjects><infoObject type="Publication"><attribute name="note"><data>x</data></attribute></infoObject></infoObjects>`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	e := newEntity(doc.InfoObjects("Publication")[0], types.KindPublication)
	if e.ID != "" {
		t.Errorf("ID = %q, want empty", e.ID)
	}
}
