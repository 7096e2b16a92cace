package document

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
)

// InvalidModelError is returned when a model passed to a Registry is not
// a value or pointer of a named type.
func InvalidModelError(model any) error {
	msg := "Cannot register <em>%T</em> as a document type"
	vars := []any{model}
	return &gn.Error{
		Code: errcode.DocumentInvalidModelError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("model %T is not a named type", model),
	}
}

// DuplicateCollectionError is returned by a strict Scanner when two types
// resolve to the same collection.
func DuplicateCollectionError(collection string, first, second Descriptor) error {
	msg := `Collection <em>%s</em> is claimed by more than one document

<em>Documents:</em>
  - %s
  - %s

<em>How to fix:</em>
  Set a distinct collection name on one of the types.`
	vars := []any{collection, first.FullName(), second.FullName()}
	return &gn.Error{
		Code: errcode.DocumentDuplicateCollectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("collection %q resolved for both %s and %s",
			collection, first.FullName(), second.FullName()),
	}
}
