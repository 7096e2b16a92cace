// Package expect compares an expected data set with the data actually
// stored in a database.
//
// Expected records are partial: only the fields they name are checked,
// so generated fields such as _id can be left out. Every expected record
// has to match its own actual record, and every expected collection has
// to hold exactly as many records as the expectation lists.
package expect

import (
	"fmt"

	"github.com/gnames/gnfmt"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/jupiter-tools/mongotest/pkg/match"
)

// Mismatch describes one failed expectation.
type Mismatch struct {
	// Collection is the data set key the mismatch belongs to.
	Collection string

	// Index is the position of the expected record, -1 for
	// collection-level problems.
	Index int

	// Reason is a human readable description.
	Reason string
}

func (m Mismatch) String() string {
	if m.Index < 0 {
		return fmt.Sprintf("%s: %s", m.Collection, m.Reason)
	}
	return fmt.Sprintf("%s[%d]: %s", m.Collection, m.Index, m.Reason)
}

// Comparator checks expected data sets against actual ones.
type Comparator struct {
	matcher match.Matcher
}

// New creates a Comparator. A nil matcher means match.Equal.
func New(m match.Matcher) *Comparator {
	if m == nil {
		m = match.Equal{}
	}
	return &Comparator{matcher: m}
}

// Compare is a shortcut for New(m).Compare(expected, actual).
func Compare(expected, actual dataset.DataSet, m match.Matcher) error {
	return New(m).Compare(expected, actual)
}

// Compare returns nil when actual satisfies expected, and an
// ExpectationError listing every mismatch otherwise. Keys of actual that
// are absent from expected are not checked.
func (c *Comparator) Compare(expected, actual dataset.DataSet) error {
	var res []Mismatch
	for _, coll := range expected.Keys() {
		res = append(res, c.compareCollection(coll, expected[coll], actual[coll])...)
	}
	if len(res) > 0 {
		return ExpectationError(res)
	}
	return nil
}

func (c *Comparator) compareCollection(
	coll string,
	expected, actual []dataset.Record,
) []Mismatch {
	var res []Mismatch
	if len(expected) != len(actual) {
		res = append(res, Mismatch{
			Collection: coll,
			Index:      -1,
			Reason: fmt.Sprintf("expected %d records but found %d",
				len(expected), len(actual)),
		})
	}

	pairs := c.pair(expected, actual)
	for i, exp := range expected {
		if pairs[i] < 0 {
			res = append(res, Mismatch{
				Collection: coll,
				Index:      i,
				Reason:     "no matching record for " + describe(exp),
			})
		}
	}
	return res
}

// pair assigns distinct actual records to as many expected records as
// possible (maximum bipartite matching by augmenting paths). The result
// holds the actual index for every expected record, or -1.
func (c *Comparator) pair(expected, actual []dataset.Record) []int {
	fits := make([][]int, len(expected))
	for i, exp := range expected {
		for j, act := range actual {
			if c.matchValue(act, exp) {
				fits[i] = append(fits[i], j)
			}
		}
	}

	owner := make([]int, len(actual))
	for j := range owner {
		owner[j] = -1
	}
	var augment func(i int, seen []bool) bool
	augment = func(i int, seen []bool) bool {
		for _, j := range fits[i] {
			if seen[j] {
				continue
			}
			seen[j] = true
			if owner[j] < 0 || augment(owner[j], seen) {
				owner[j] = i
				return true
			}
		}
		return false
	}
	for i := range expected {
		augment(i, make([]bool, len(actual)))
	}

	res := make([]int, len(expected))
	for i := range res {
		res[i] = -1
	}
	for j, i := range owner {
		if i >= 0 {
			res[i] = j
		}
	}
	return res
}

// matchValue walks objects and arrays and hands leaves to the matcher.
func (c *Comparator) matchValue(actual, expected any) bool {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			return false
		}
		for k, v := range exp {
			av, ok := act[k]
			if !ok {
				return false
			}
			if !c.matchValue(av, v) {
				return false
			}
		}
		return true
	case []any:
		act, ok := actual.([]any)
		if !ok || len(act) != len(exp) {
			return false
		}
		for i := range exp {
			if !c.matchValue(act[i], exp[i]) {
				return false
			}
		}
		return true
	default:
		return c.matcher.Match(actual, expected)
	}
}

func describe(rec dataset.Record) string {
	bs, err := gnfmt.GNjson{}.Encode(rec)
	if err != nil {
		return fmt.Sprintf("%v", rec)
	}
	return string(bs)
}
