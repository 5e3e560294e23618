// Package docdb defines the document database interface.
package docdb

import (
	"context"
	"errors"
)

// ErrNoDocuments is returned by SingleResult when the filter matched nothing.
var ErrNoDocuments = errors.New("docdb: no documents in result")

// SingleResult represents the result of a FindOne operation.
type SingleResult interface {
	// Decode decodes the result into the provided interface.
	Decode(v interface{}) error
	// Err returns any error from the operation.
	Err() error
}

// Cursor represents the documents returned by Find.
type Cursor interface {
	// All decodes all remaining documents.
	All(ctx context.Context, results interface{}) error
	// Close closes the cursor.
	Close(ctx context.Context) error
}

// FindOptions represents options for Find operations.
type FindOptions struct {
	// Limit bounds the number of returned documents. Zero means no bound.
	Limit int64
}

// InsertOneResult represents the acknowledgment of an insert operation.
type InsertOneResult struct {
	InsertedID interface{}
}

// UpdateResult represents the result of an update or replace operation.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    interface{}
}

// DeleteResult represents the result of a delete operation.
type DeleteResult struct {
	DeletedCount int64
}

// Collection defines the interface for document collection operations.
type Collection interface {
	// InsertOne inserts a single document.
	InsertOne(ctx context.Context, document interface{}) (*InsertOneResult, error)

	// FindOne finds a single document.
	FindOne(ctx context.Context, filter interface{}) SingleResult

	// Find finds multiple documents.
	Find(ctx context.Context, filter interface{}, opts *FindOptions) (Cursor, error)

	// UpdateOne updates a single document.
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*UpdateResult, error)

	// ReplaceOne replaces a single document.
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}) (*UpdateResult, error)

	// DeleteOne deletes a single document.
	DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error)

	// DeleteMany deletes multiple documents.
	DeleteMany(ctx context.Context, filter interface{}) (*DeleteResult, error)

	// CountDocuments counts documents matching the filter.
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// Database defines the interface for database operations.
type Database interface {
	// Collection returns a collection by name.
	Collection(name string) Collection

	// ListCollectionNames lists all collection names.
	ListCollectionNames(ctx context.Context) ([]string, error)
}
