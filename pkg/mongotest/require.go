package mongotest

import (
	"context"

	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// RequirePopulated populates the database and stops the test on failure.
func (t *Tester) RequirePopulated(
	tt require.TestingT,
	ctx context.Context,
	text dataset.Text,
) {
	if h, ok := tt.(tHelper); ok {
		h.Helper()
	}
	require.NoError(tt, t.Populate(ctx, text), "populate database")
}

// RequireExpected checks the database against the expected data set and
// stops the test with the list of mismatches on failure.
func (t *Tester) RequireExpected(
	tt require.TestingT,
	ctx context.Context,
	text dataset.Text,
) {
	if h, ok := tt.(tHelper); ok {
		h.Helper()
	}
	require.NoError(tt, t.Expect(ctx, text), "database content")
}
