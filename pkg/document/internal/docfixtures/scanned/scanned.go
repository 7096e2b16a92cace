// Package scanned holds document types for scanner tests: one of each
// marker style plus an unmarked type.
package scanned

import "github.com/jupiter-tools/mongotest/pkg/document"

// AntkorwinTestDocFirst has no naming attributes.
type AntkorwinTestDocFirst struct {
	document.Meta
	ID string
}

// AntkorwinTestDocSecond sets the positional name.
type AntkorwinTestDocSecond struct {
	ID string
}

func (AntkorwinTestDocSecond) DocumentMarker() document.Marker {
	return document.Marker{Value: "antkorwin-test-doc-second"}
}

// AntkorwinTestDocThird sets the named collection attribute.
type AntkorwinTestDocThird struct {
	document.Meta `collection:"antkorwin-test-doc-THIRD"`
	ID            string
}

// Plain is not a document.
type Plain struct {
	ID string
}

// Models returns every type of the package, marked or not.
func Models() []any {
	return []any{
		&AntkorwinTestDocFirst{},
		AntkorwinTestDocSecond{},
		&AntkorwinTestDocThird{},
		&Plain{},
	}
}
