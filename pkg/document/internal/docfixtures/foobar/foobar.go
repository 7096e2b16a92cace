// Package foobar holds document types used outside of the scanned
// namespace.
package foobar

import "github.com/jupiter-tools/mongotest/pkg/document"

// FooBar is a document named after its type.
type FooBar struct {
	document.Meta
	ID   string `json:"id"`
	Data string `json:"data"`
	Bar  *Bar   `json:"bar"`
}

// Bar is embedded into FooBar and is not a document.
type Bar struct {
	Name string `json:"name"`
}

// Renamed has both attributes set; the collection attribute wins.
type Renamed struct {
	document.Meta `document:"ignored" collection:"renamed_docs"`
}

// Models returns all types of the package.
func Models() []any {
	return []any{&FooBar{}, &Bar{}, &Renamed{}}
}
