package mongotest_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/jupiter-tools/mongotest/pkg/document"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Order struct {
	document.Meta `collection:"orders"`
	Number        string  `json:"number"`
	Total         float64 `json:"total"`
}

type AuditEntry struct {
	Action string `json:"action"`
}

func (AuditEntry) DocumentMarker() document.Marker {
	return document.Marker{Value: "audit_log"}
}

var errRead = errors.New("read failed")

// memOperator keeps collections in memory.
type memOperator struct {
	mu      sync.Mutex
	data    map[string][]dataset.Record
	failOn  string
	dropped int
}

func newMemOperator() *memOperator {
	return &memOperator{data: make(map[string][]dataset.Record)}
}

func (m *memOperator) Connect(context.Context, *config.MongoConfig) error {
	return nil
}

func (m *memOperator) Close(context.Context) error { return nil }

func (m *memOperator) Database() *mongo.Database { return nil }

func (m *memOperator) CollectionNames(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []string
	for k := range m.data {
		res = append(res, k)
	}
	slices.Sort(res)
	return res, nil
}

func (m *memOperator) Read(_ context.Context, coll string) ([]dataset.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if coll == m.failOn {
		return nil, errRead
	}
	return slices.Clone(m.data[coll]), nil
}

func (m *memOperator) Insert(
	_ context.Context,
	coll string,
	recs []dataset.Record,
) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[coll] = append(m.data[coll], recs...)
	return len(recs), nil
}

func (m *memOperator) DropAll(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped += len(m.data)
	m.data = make(map[string][]dataset.Record)
	return nil
}
