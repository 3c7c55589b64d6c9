// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the faucris client:
// the normalized CRIS entity, the ordered identity-keyed collection, and
// the configuration structs consumed by the client packages.
package types

// Kind discriminates which structural pattern produced an entity and which
// downstream logic (e.g. BibTeX mapping) applies to it.
type Kind string

const (
	KindOrganization Kind = "organization"
	KindPublication  Kind = "publication"
)

// InfoObjectType returns the type marker the CRIS web service uses for
// infoObject elements of this kind.
func (k Kind) InfoObjectType() string {
	switch k {
	case KindOrganization:
		return "Organisation"
	case KindPublication:
		return "Publication"
	}
	return ""
}

// Entity is one normalized CRIS record. It is constructed once from a parsed
// infoObject node and treated as immutable afterwards.
//
// Attribute values are either absent or a string; an attribute that exists in
// the source with an empty value is stored as an empty string, which is
// distinct from a missing key. Use Attr to tell the two apart.
type Entity struct {
	// ID is the record identity, unique within one retrieval batch.
	// Entities without an ID are discarded before merging.
	ID string `json:"id" yaml:"id"`

	// Kind is the entity discriminator (organization or publication).
	Kind Kind `json:"kind" yaml:"kind"`

	// CreatedOn and UpdatedOn are opaque timestamp strings taken verbatim
	// from the web service. No parsing or validation is performed.
	CreatedOn string `json:"created_on,omitempty" yaml:"created_on,omitempty"`
	UpdatedOn string `json:"updated_on,omitempty" yaml:"updated_on,omitempty"`

	// Attributes maps lower-cased attribute names to string values.
	// Alternate-language variants live under their own key ("<name>_en")
	// and never overwrite the base key.
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// Attr returns the attribute value and whether the attribute is present.
func (e *Entity) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Get returns the attribute value, or the empty string when absent.
// Callers that need to distinguish absence from an empty value use Attr.
func (e *Entity) Get(name string) string {
	return e.Attributes[name]
}

// Has reports whether the attribute is present, empty or not.
func (e *Entity) Has(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

// Collection is a merged set of entities keyed by identity. Inserting an
// entity whose identity is already present replaces the stored entity but
// keeps its original position, so iteration order is a deterministic
// function of first-insertion order regardless of later overwrites.
type Collection struct {
	ids  []string
	byID map[string]*Entity
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]*Entity)}
}

// Put inserts e, replacing any entity with the same identity (last write
// wins). Entities with an empty identity are ignored.
func (c *Collection) Put(e *Entity) {
	if e == nil || e.ID == "" {
		return
	}
	if _, ok := c.byID[e.ID]; !ok {
		c.ids = append(c.ids, e.ID)
	}
	c.byID[e.ID] = e
}

// Get returns the entity stored under id.
func (c *Collection) Get(id string) (*Entity, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Len returns the number of distinct identities in the collection.
func (c *Collection) Len() int { return len(c.ids) }

// IDs returns the identities in insertion order.
func (c *Collection) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Entities returns the entities in insertion order.
func (c *Collection) Entities() []*Entity {
	out := make([]*Entity, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out
}
