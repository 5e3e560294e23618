// Package docdb defines the document database client interface.
package docdb

import (
	"context"
)

// Client defines the interface for a document database client.
// A Client owns one connection; databases and collections are addressed per call.
type Client interface {
	// Database returns the named database on the shared connection.
	Database(name string) Database

	// Collection returns the named collection of the named database.
	Collection(database, collection string) Collection

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}
