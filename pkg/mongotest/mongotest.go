// Package mongotest checks MongoDB state in integration tests.
//
// A Tester populates a database from JSON data sets, exports its content
// back into a data set, and compares it with an expected data set. Data
// set keys are collection names or qualified names of document types
// discovered by a document.Scanner, so fixtures can follow renames of
// collections without being edited.
//
//	tst, err := mongotest.Connect(ctx, &cfg.Mongo,
//		mongotest.OptBasePackage("github.com/acme/shop/model"))
//	...
//	tst.RequirePopulated(t, ctx, dataset.File("testdata/init.json"))
//	// run the code under test
//	tst.RequireExpected(t, ctx, dataset.File("testdata/expected.json"))
package mongotest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jupiter-tools/mongotest/internal/iomongo"
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/jupiter-tools/mongotest/pkg/db"
	"github.com/jupiter-tools/mongotest/pkg/document"
	"github.com/jupiter-tools/mongotest/pkg/expect"
	"github.com/jupiter-tools/mongotest/pkg/match"
	"golang.org/x/sync/errgroup"
)

// Option configures a Tester.
type Option func(*Tester)

// OptBasePackage limits document scanning to an import path prefix.
func OptBasePackage(s string) Option {
	return func(t *Tester) {
		t.basePackage = s
	}
}

// OptMatcher sets the matcher used for leaf values of expectations.
func OptMatcher(m match.Matcher) Option {
	return func(t *Tester) {
		if m != nil {
			t.matcher = m
		}
	}
}

// OptJobsNumber sets how many collections are read at the same time.
func OptJobsNumber(i int) Option {
	return func(t *Tester) {
		if i > 0 {
			t.jobs = i
		}
	}
}

// OptOnRead registers a function called after a collection was read. It
// can be called from several goroutines at once.
func OptOnRead(fn func(collection string, records int)) Option {
	return func(t *Tester) {
		t.onRead = fn
	}
}

// Tester runs data set operations against one database.
type Tester struct {
	op          db.Operator
	sc          *document.Scanner
	basePackage string
	matcher     match.Matcher
	jobs        int
	onRead      func(string, int)
}

// New creates a Tester for a connected operator. A nil scanner means a
// scanner of the default document registry.
func New(op db.Operator, sc *document.Scanner, opts ...Option) *Tester {
	if sc == nil {
		sc = document.NewScanner(nil)
	}
	res := &Tester{
		op:      op,
		sc:      sc,
		matcher: match.Equal{},
		jobs:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Connect opens a MongoDB connection and returns a Tester for it. The
// connection is released by Close.
func Connect(
	ctx context.Context,
	cfg *config.MongoConfig,
	opts ...Option,
) (*Tester, error) {
	op := iomongo.NewOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return New(op, nil, opts...), nil
}

// Operator returns the database operator of the Tester.
func (t *Tester) Operator() db.Operator {
	return t.op
}

// Close closes the operator.
func (t *Tester) Close(ctx context.Context) error {
	return t.op.Close(ctx)
}

// Scan discovers document types under the configured base package.
// Every call scans anew, so types registered later are picked up.
func (t *Tester) Scan() (document.ScanResult, error) {
	return t.sc.Scan(t.basePackage)
}

// Populate inserts every record of the data set read from text.
func (t *Tester) Populate(ctx context.Context, text dataset.Text) error {
	ds, err := dataset.Parse(text)
	if err != nil {
		return err
	}
	_, err = t.Load(ctx, ds)
	return err
}

// Load inserts records of a parsed data set and returns how many were
// inserted.
func (t *Tester) Load(ctx context.Context, ds dataset.DataSet) (int, error) {
	sr, err := t.Scan()
	if err != nil {
		return 0, err
	}
	byColl, err := ds.ByCollection(sr)
	if err != nil {
		return 0, err
	}

	var res int
	for _, coll := range byColl.Keys() {
		n, err := t.op.Insert(ctx, coll, byColl[coll])
		if err != nil {
			return res, err
		}
		slog.Debug("Populated collection", "collection", coll, "records", n)
		res += n
	}
	return res, nil
}

// Export reads the whole database. Collections of scanned document types
// are keyed by the qualified type name, others by collection name. Empty
// collections are left out.
func (t *Tester) Export(ctx context.Context) (dataset.DataSet, error) {
	sr, err := t.Scan()
	if err != nil {
		return nil, err
	}
	names, err := t.op.CollectionNames(ctx)
	if err != nil {
		return nil, err
	}
	actual, err := t.readAll(ctx, names)
	if err != nil {
		return nil, err
	}

	res := make(dataset.DataSet, len(actual))
	for coll, recs := range actual {
		if len(recs) == 0 {
			continue
		}
		key := coll
		if d, ok := sr[coll]; ok {
			key = d.FullName()
		}
		res[key] = recs
	}
	return res, nil
}

// Expect compares the database with the data set read from text. It
// returns an expect.ExpectationError describing all differences.
func (t *Tester) Expect(ctx context.Context, text dataset.Text) error {
	ds, err := dataset.Parse(text)
	if err != nil {
		return err
	}
	return t.ExpectDataSet(ctx, ds)
}

// ExpectDataSet compares the database with a parsed data set. Only the
// collections named by the data set are read.
func (t *Tester) ExpectDataSet(ctx context.Context, ds dataset.DataSet) error {
	sr, err := t.Scan()
	if err != nil {
		return err
	}
	expected, err := ds.ByCollection(sr)
	if err != nil {
		return err
	}
	actual, err := t.readAll(ctx, expected.Keys())
	if err != nil {
		return err
	}
	return expect.New(t.matcher).Compare(expected, actual)
}

// CleanUp drops every collection of the database.
func (t *Tester) CleanUp(ctx context.Context) error {
	return t.op.DropAll(ctx)
}

func (t *Tester) readAll(
	ctx context.Context,
	names []string,
) (dataset.DataSet, error) {
	var mu sync.Mutex
	res := make(dataset.DataSet, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.jobs)
	for _, coll := range names {
		g.Go(func() error {
			recs, err := t.op.Read(ctx, coll)
			if err != nil {
				return err
			}
			mu.Lock()
			res[coll] = recs
			mu.Unlock()
			if t.onRead != nil {
				t.onRead(coll, len(recs))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
