package expect

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
)

// ExpectationError is returned when the actual data does not satisfy the
// expected data set. The mismatches are available via Mismatches.
func ExpectationError(mm []Mismatch) error {
	lines := make([]string, len(mm))
	for i, v := range mm {
		lines[i] = "  - " + v.String()
	}
	msg := `Database content does not match the expected data set

<em>Mismatches:</em>
%s`
	vars := []any{strings.Join(lines, "\n")}
	return &gn.Error{
		Code: errcode.ExpectationMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: &mismatchError{
			mismatches: mm,
			summary:    fmt.Sprintf("%d expectation(s) failed", len(mm)),
		},
	}
}

type mismatchError struct {
	mismatches []Mismatch
	summary    string
}

func (e *mismatchError) Error() string {
	lines := make([]string, 0, len(e.mismatches)+1)
	lines = append(lines, e.summary)
	for _, v := range e.mismatches {
		lines = append(lines, v.String())
	}
	return strings.Join(lines, "\n")
}

// Mismatches extracts the mismatches from an error returned by Compare.
func Mismatches(err error) []Mismatch {
	gnErr, ok := err.(*gn.Error)
	if !ok || gnErr.Code != errcode.ExpectationMismatchError {
		return nil
	}
	if me, ok := gnErr.Err.(*mismatchError); ok {
		return me.mismatches
	}
	return nil
}
