package iomanifest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
)

func ReadError(path string, err error) error {
	msg := "Cannot read document manifest <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DocumentManifestReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read manifest %s: %w",
			fn.Name(), path, err),
	}
}

// EntryError is returned for a manifest entry whose type name is not
// a qualified Go type name.
func EntryError(path string, idx int, typ string) error {
	msg := `Entry %d of <em>%s</em> has invalid type '%s'

<em>Expected format:</em>
  type: github.com/acme/app/model.Order`
	vars := []any{idx + 1, path, typ}
	return &gn.Error{
		Code: errcode.DocumentManifestEntryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("manifest %s entry %d: invalid type %q",
			path, idx+1, typ),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write document manifest <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write manifest %s: %w", path, err),
	}
}
