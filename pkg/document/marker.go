// Package document discovers persisted-document types and maps each of
// them to the MongoDB collection its instances are stored in.
//
// A type carries the persisted-document marker in one of three ways:
//
//   - it implements Documenter;
//   - it embeds Meta, optionally tagged with `document:"..."` (the positional
//     name) and/or `collection:"..."` (the named collection attribute);
//   - it is added to a Registry with AddWithMarker.
//
// The collection name of a marked type is resolved by Resolve: a non-empty
// Collection wins, then a non-empty Value, then the lower-cased type name.
//
// Types are never discovered by walking the binary. Candidates are listed
// explicitly in a Registry (usually from init functions) or in a manifest
// file, and the Scanner consumes them through the Enumerator interface.
// Adding a type never runs any of its methods except DocumentMarker.
package document

import "strings"

// Marker holds the naming attributes of a persisted document.
// Empty strings mean the attribute is absent.
type Marker struct {
	// Value is the positional collection name.
	Value string `yaml:"value"`

	// Collection is the named collection attribute. It takes precedence
	// over Value.
	Collection string `yaml:"collection"`
}

// Documenter is implemented by types that declare their own marker.
type Documenter interface {
	DocumentMarker() Marker
}

// Meta marks a struct as a persisted document when embedded.
// Tags on the embedded field provide the marker attributes:
//
//	type Order struct {
//		document.Meta `collection:"orders"`
//		ID string
//	}
type Meta struct{}

// Resolve returns the collection name for a type with the given simple
// name and marker.
func Resolve(simpleName string, m Marker) string {
	if m.Collection != "" {
		return m.Collection
	}
	if m.Value != "" {
		return m.Value
	}
	return strings.ToLower(simpleName)
}
