package dataset

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
)

func ReadError(path string, err error) error {
	msg := "Cannot read data set <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataSetReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn.Name(), path, err),
	}
}

func ParseError(src string, err error) error {
	msg := `Cannot parse data set <em>%s</em>

<em>Expected format:</em>
  {"<type or collection>": [{...}, {...}], ...}`
	vars := []any{src}
	return &gn.Error{
		Code: errcode.DataSetParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse data set %s: %w", src, err),
	}
}

func EncodeError(err error) error {
	return &gn.Error{
		Code: errcode.DataSetEncodeError,
		Msg:  "Cannot encode data set to JSON",
		Err:  fmt.Errorf("cannot encode data set: %w", err),
	}
}

// UnknownDocumentError is returned when a data set key is neither a
// scanned collection nor a scanned document type.
func UnknownDocumentError(key string, known []string) error {
	msg := `Data set key <em>%s</em> does not match any document

<em>Known collections:</em>
  %s

<em>How to fix:</em>
  1. Register the document type before running the test
  2. Check the base package used for scanning`
	list := strings.Join(known, "\n  ")
	if list == "" {
		list = "(none)"
	}
	vars := []any{key, list}
	return &gn.Error{
		Code: errcode.DataSetUnknownDocumentError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown document %q", key),
	}
}
