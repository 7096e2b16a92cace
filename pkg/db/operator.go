package db

import (
	"context"

	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Operator defines the interface for the MongoDB operations needed to
// populate, export and check a database under test.
//
// Records cross this boundary as JSON-typed maps (relaxed Extended JSON),
// the same shape used by data set fixtures, so expected and actual values
// can be compared without knowing the Go types of the documents.
type Operator interface {
	// Connect establishes a client and verifies the server is reachable.
	Connect(context.Context, *config.MongoConfig) error

	// Close disconnects the client.
	Close(context.Context) error

	// Database returns the underlying database handle for operations
	// not covered by this interface.
	Database() *mongo.Database

	// CollectionNames returns the names of all collections in the
	// database, sorted.
	CollectionNames(ctx context.Context) ([]string, error)

	// Read returns every document of a collection. A missing collection
	// yields an empty result.
	Read(ctx context.Context, collection string) ([]dataset.Record, error)

	// Insert stores records in a collection and returns how many were
	// inserted.
	Insert(ctx context.Context, collection string, recs []dataset.Record) (int, error)

	// DropAll drops every collection of the database.
	DropAll(ctx context.Context) error
}
