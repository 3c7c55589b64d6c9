// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xmlNode is a generic element tree. The CRIS web service nests infoObject
// elements at varying depths depending on the request template, so responses
// are decoded into this schema-free form and queried structurally.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// attr returns the value of the named element attribute and whether it is set.
func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// firstChild returns the first child element with the given local name.
func (n *xmlNode) firstChild(name string) (*xmlNode, bool) {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i], true
		}
	}
	return nil, false
}

// Document is one parsed web service response.
type Document struct {
	root xmlNode
}

// ParseDocument decodes an XML response body into a Document.
func ParseDocument(r io.Reader) (*Document, error) {
	var root xmlNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &Document{root: root}, nil
}

// Record is one raw infoObject node, before normalization into an Entity.
type Record struct {
	node *xmlNode
}

// InfoObjects returns all infoObject records in the document whose type
// marker matches objType, in document order.
func (d *Document) InfoObjects(objType string) []*Record {
	var out []*Record
	var walk func(n *xmlNode)
	walk = func(n *xmlNode) {
		if strings.EqualFold(n.XMLName.Local, "infoObject") {
			if t, ok := n.attr("type"); ok && t == objType {
				out = append(out, &Record{node: n})
			}
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&d.root)
	return out
}

// Attr returns the value of a record-level XML attribute (id, createdOn,
// updatedOn, type) and whether it is set.
func (r *Record) Attr(name string) (string, bool) {
	return r.node.attr(name)
}
