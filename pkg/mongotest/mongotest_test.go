package mongotest_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/jupiter-tools/mongotest/pkg/db"
	"github.com/jupiter-tools/mongotest/pkg/document"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
	"github.com/jupiter-tools/mongotest/pkg/expect"
	"github.com/jupiter-tools/mongotest/pkg/match"
	"github.com/jupiter-tools/mongotest/pkg/mongotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pkgPath = "github.com/jupiter-tools/mongotest/pkg/mongotest_test"

func newTester(t *testing.T, op db.Operator, opts ...mongotest.Option) *mongotest.Tester {
	t.Helper()
	reg := document.NewRegistry()
	require.NoError(t, reg.Add(&Order{}, AuditEntry{}))
	return mongotest.New(op, document.NewScanner(reg), opts...)
}

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	op := newMemOperator()
	tst := newTester(t, op)

	err := tst.Populate(ctx, dataset.File("testdata/init.json"))
	require.NoError(t, err)

	assert.Len(t, op.data["orders"], 2)
	assert.Len(t, op.data["audit_log"], 1)
	assert.Equal(t, "A-1", op.data["orders"][0]["number"])
}

func TestPopulateUnknownKey(t *testing.T) {
	op := newMemOperator()
	tst := newTester(t, op)

	err := tst.Populate(context.Background(),
		dataset.String(`{"pkg.Unknown": [{"a": 1}]}`))
	require.Error(t, err)
	assert.Equal(t, errcode.DataSetUnknownDocumentError, err.(*gn.Error).Code)
	assert.Empty(t, op.data)
}

func TestExpect(t *testing.T) {
	ctx := context.Background()
	tst := newTester(t, newMemOperator())
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))

	err := tst.Expect(ctx, dataset.File("testdata/expected.json"))
	require.NoError(t, err)
	tst.RequireExpected(t, ctx, dataset.File("testdata/expected.json"))
}

func TestExpectMismatch(t *testing.T) {
	ctx := context.Background()
	tst := newTester(t, newMemOperator())
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))

	err := tst.Expect(ctx, dataset.String(`{
		"orders": [{"number": "A-1"}, {"number": "A-3"}],
		"audit_log": []
	}`))
	require.Error(t, err)

	mm := expect.Mismatches(err)
	require.Len(t, mm, 2)
	assert.Equal(t, "audit_log", mm[0].Collection)
	assert.Equal(t, -1, mm[0].Index)
	assert.Equal(t, "orders", mm[1].Collection)
	assert.Equal(t, 1, mm[1].Index)
}

func TestExpectCustomMatcher(t *testing.T) {
	ctx := context.Background()
	anything := match.Func(func(_, _ any) bool { return true })
	tst := newTester(t, newMemOperator(), mongotest.OptMatcher(anything))
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))

	err := tst.Expect(ctx, dataset.String(`{"audit_log": [{"action": "deleted"}]}`))
	assert.NoError(t, err)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	op := newMemOperator()
	var mu sync.Mutex
	seen := make(map[string]int)
	tst := newTester(t, op,
		mongotest.OptJobsNumber(2),
		mongotest.OptOnRead(func(coll string, n int) {
			mu.Lock()
			seen[coll] = n
			mu.Unlock()
		}),
	)
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))
	_, err := op.Insert(ctx, "events", []dataset.Record{{"kind": "tick"}})
	require.NoError(t, err)
	op.data["empty"] = nil

	ds, err := tst.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"events",
		pkgPath + ".AuditEntry",
		pkgPath + ".Order",
	}, ds.Keys())
	assert.Len(t, ds[pkgPath+".Order"], 2)
	assert.Equal(t, map[string]int{
		"orders": 2, "audit_log": 1, "events": 1, "empty": 0,
	}, seen)

	// collections without a document type cannot be loaded back
	_, err = tst.Load(ctx, ds)
	assert.Equal(t, errcode.DataSetUnknownDocumentError, err.(*gn.Error).Code)

	delete(ds, "events")
	require.NoError(t, tst.CleanUp(ctx))
	assert.Empty(t, op.data)
	n, err := tst.Load(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, tst.ExpectDataSet(ctx, ds))
}

func TestExportReadError(t *testing.T) {
	ctx := context.Background()
	op := newMemOperator()
	tst := newTester(t, op, mongotest.OptJobsNumber(1))
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))

	op.failOn = "orders"
	_, err := tst.Export(ctx)
	assert.ErrorIs(t, err, errRead)
}

func TestScanSeesNewTypes(t *testing.T) {
	reg := document.NewRegistry()
	tst := mongotest.New(newMemOperator(), document.NewScanner(reg))

	sr, err := tst.Scan()
	require.NoError(t, err)
	assert.Empty(t, sr)

	require.NoError(t, reg.Add(&Order{}))
	sr, err = tst.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"orders"}, sr.Collections())
}

// recorder implements require.TestingT.
type recorder struct {
	msgs   []string
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.failed = true
}

func TestRequireExpectedFails(t *testing.T) {
	ctx := context.Background()
	tst := newTester(t, newMemOperator())
	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))

	rec := &recorder{}
	tst.RequireExpected(rec, ctx, dataset.String(`{"orders": []}`))
	assert.True(t, rec.failed)
	require.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "expected 0 records but found 2")
}
