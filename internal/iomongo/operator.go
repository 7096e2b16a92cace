// Package iomongo implements database operations using the official
// MongoDB driver. This is an impure I/O package that implements contracts
// defined in pkg/.
package iomongo

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/jupiter-tools/mongotest/pkg/db"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// mongoOperator implements db.Operator interface on top of a
// mongo.Client.
type mongoOperator struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewOperator creates a new database operator (without connecting).
func NewOperator() db.Operator {
	return &mongoOperator{}
}

// Connect creates a client and pings the primary.
func (m *mongoOperator) Connect(
	ctx context.Context,
	cfg *config.MongoConfig,
) error {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return ConnectionError(cfg.URI, cfg.Database, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return ConnectionError(cfg.URI, cfg.Database, err)
	}

	m.client = client
	m.db = client.Database(cfg.Database)
	slog.Debug("Connected to MongoDB",
		"uri", redact(cfg.URI), "database", cfg.Database)
	return nil
}

// Close disconnects the client.
func (m *mongoOperator) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}

// Database returns the underlying mongo.Database.
func (m *mongoOperator) Database() *mongo.Database {
	return m.db
}

// CollectionNames lists user collections, skipping system ones.
func (m *mongoOperator) CollectionNames(
	ctx context.Context,
) ([]string, error) {
	if m.db == nil {
		return nil, NotConnectedError()
	}

	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, ListCollectionsError(m.db.Name(), err)
	}

	res := make([]string, 0, len(names))
	for _, v := range names {
		if strings.HasPrefix(v, "system.") {
			continue
		}
		res = append(res, v)
	}
	slices.Sort(res)
	return res, nil
}

// Read returns documents of a collection ordered by _id, converted to
// relaxed Extended JSON records. Numbers stay json.Number, so int64
// values keep every digit.
func (m *mongoOperator) Read(
	ctx context.Context,
	collection string,
) ([]dataset.Record, error) {
	if m.db == nil {
		return nil, NotConnectedError()
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, ReadCollectionError(collection, err)
	}
	defer cur.Close(ctx)

	res := make([]dataset.Record, 0)
	for cur.Next(ctx) {
		bs, err := bson.MarshalExtJSON(cur.Current, false, false)
		if err != nil {
			return nil, ReadCollectionError(collection, err)
		}
		var rec dataset.Record
		if err := dataset.Decode(bs, &rec); err != nil {
			return nil, ReadCollectionError(collection, err)
		}
		res = append(res, rec)
	}

	if err := cur.Err(); err != nil {
		return nil, ReadCollectionError(collection, err)
	}
	return res, nil
}

// Insert converts records from relaxed Extended JSON to BSON and stores
// them with a single InsertMany call.
func (m *mongoOperator) Insert(
	ctx context.Context,
	collection string,
	recs []dataset.Record,
) (int, error) {
	if m.db == nil {
		return 0, NotConnectedError()
	}
	if len(recs) == 0 {
		return 0, nil
	}

	docs, err := toBSON(recs)
	if err != nil {
		return 0, InsertError(collection, err)
	}

	res, err := m.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return 0, InsertError(collection, err)
	}
	return len(res.InsertedIDs), nil
}

// DropAll drops every user collection of the database.
func (m *mongoOperator) DropAll(ctx context.Context) error {
	if m.db == nil {
		return NotConnectedError()
	}

	names, err := m.CollectionNames(ctx)
	if err != nil {
		return err
	}

	for _, v := range names {
		if err := m.db.Collection(v).Drop(ctx); err != nil {
			return DropError(v, err)
		}
	}
	slog.Debug("Dropped collections", "count", len(names))
	return nil
}

func toBSON(recs []dataset.Record) ([]any, error) {
	enc := gnfmt.GNjson{}
	res := make([]any, len(recs))
	for i, v := range recs {
		bs, err := enc.Encode(v)
		if err != nil {
			return nil, err
		}
		var doc bson.D
		if err := bson.UnmarshalExtJSON(bs, false, &doc); err != nil {
			return nil, err
		}
		res[i] = doc
	}
	return res, nil
}
