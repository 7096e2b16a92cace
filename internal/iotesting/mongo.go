// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// MongoImage is the image started for integration tests.
	MongoImage = "mongo:7"

	// URIEnv points tests to an already running server instead of a
	// container.
	URIEnv = "MONGOTEST_TEST_URI"

	// DatabasePrefix starts the name of every test database, so tests
	// never touch a database that was not created by them.
	DatabasePrefix = "mongotest_"
)

// Mongo is a MongoDB server available to a test binary.
type Mongo struct {
	URI       string
	container *mongodb.MongoDBContainer
}

// StartMongo returns a server for integration tests. If URIEnv is set it
// is used as is, otherwise a container is started.
//
// Usage in TestMain:
//
//	func TestMain(m *testing.M) {
//	    var srv *iotesting.Mongo
//	    if !testing.Short() {
//	        srv, err = iotesting.StartMongo(ctx)
//	        ...
//	    }
//	    code := m.Run()
//	    srv.Stop()
//	    os.Exit(code)
//	}
func StartMongo(ctx context.Context) (*Mongo, error) {
	if uri := strings.TrimSpace(os.Getenv(URIEnv)); uri != "" {
		return &Mongo{URI: uri}, nil
	}

	c, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start mongodb container: %w", err)
	}

	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return &Mongo{URI: uri, container: c}, nil
}

// Stop terminates the container, if any. Safe on nil.
func (m *Mongo) Stop() {
	if m == nil || m.container == nil {
		return
	}
	_ = testcontainers.TerminateContainer(m.container)
}

// MongoConfig returns connection settings with a fresh database name, so
// tests running in parallel do not see each other's data.
func (m *Mongo) MongoConfig(t *testing.T) *config.MongoConfig {
	t.Helper()
	if m == nil {
		t.Skip("MongoDB is not available")
	}
	return &config.MongoConfig{
		URI:        m.URI,
		Database:   DatabaseName(),
		TimeoutSec: 10,
	}
}

// DatabaseName generates a unique name of a test database.
func DatabaseName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return DatabasePrefix + id
}

// SetupTempHome creates a temporary home directory, sets HOME to it for
// the duration of the test, and returns a config pointing to it. The
// directory is removed when the test finishes.
func SetupTempHome(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptLogDestination("stderr"),
	})
	return cfg
}
