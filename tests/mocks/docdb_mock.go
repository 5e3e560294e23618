// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// MockCollection is a mock implementation of docdb.Collection.
type MockCollection struct {
	mock.Mock
}

// InsertOne inserts a single document.
func (m *MockCollection) InsertOne(ctx context.Context, document interface{}) (*docdb.InsertOneResult, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.InsertOneResult), args.Error(1)
}

// FindOne finds a single document.
func (m *MockCollection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(docdb.SingleResult)
}

// Find finds multiple documents.
func (m *MockCollection) Find(ctx context.Context, filter interface{}, opts *docdb.FindOptions) (docdb.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Cursor), args.Error(1)
}

// UpdateOne updates a single document.
func (m *MockCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// ReplaceOne replaces a single document.
func (m *MockCollection) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, replacement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// DeleteOne deletes a single document.
func (m *MockCollection) DeleteOne(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// DeleteMany deletes multiple documents.
func (m *MockCollection) DeleteMany(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// CountDocuments counts documents matching the filter.
func (m *MockCollection) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDatabase is a mock implementation of docdb.Database.
type MockDatabase struct {
	mock.Mock
}

// Collection returns a collection from the database.
func (m *MockDatabase) Collection(name string) docdb.Collection {
	args := m.Called(name)
	return args.Get(0).(docdb.Collection)
}

// ListCollectionNames lists all collection names.
func (m *MockDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
// Collections and databases are created on first use and keyed by name.
type MockDocDBClient struct {
	mock.Mock
	collections map[string]*MockCollection
	databases   map[string]*MockDatabase
}

// NewMockDocDBClient creates a new MockDocDBClient.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{
		collections: make(map[string]*MockCollection),
		databases:   make(map[string]*MockDatabase),
	}
}

// Database returns the mock database with the given name.
func (m *MockDocDBClient) Database(name string) docdb.Database {
	return m.GetDatabase(name)
}

// Collection returns the mock collection for database and collection.
func (m *MockDocDBClient) Collection(database, collection string) docdb.Collection {
	return m.GetCollection(database, collection)
}

// Ping checks the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// GetCollection returns the mock collection for setup.
func (m *MockDocDBClient) GetCollection(database, collection string) *MockCollection {
	key := database + "." + collection
	c, ok := m.collections[key]
	if !ok {
		c = &MockCollection{}
		m.collections[key] = c
	}
	return c
}

// GetDatabase returns the mock database for setup.
func (m *MockDocDBClient) GetDatabase(name string) *MockDatabase {
	d, ok := m.databases[name]
	if !ok {
		d = &MockDatabase{}
		m.databases[name] = d
	}
	return d
}

// MockSingleResult is a mock implementation of docdb.SingleResult.
type MockSingleResult struct {
	mock.Mock
}

// NewSingleResult returns a result that decodes document, or fails with err.
func NewSingleResult(document models.Document, err error) *MockSingleResult {
	r := &MockSingleResult{}
	r.On("Err").Return(err).Maybe()
	r.On("Decode", mock.Anything).Return(err).Run(func(args mock.Arguments) {
		if err != nil {
			return
		}
		if target, ok := args.Get(0).(*models.Document); ok {
			*target = cloneDocument(document)
		}
	}).Maybe()
	return r
}

// Decode decodes the result.
func (m *MockSingleResult) Decode(v interface{}) error {
	args := m.Called(v)
	return args.Error(0)
}

// Err returns the result error.
func (m *MockSingleResult) Err() error {
	args := m.Called()
	return args.Error(0)
}

// MockCursor is a mock implementation of docdb.Cursor.
type MockCursor struct {
	mock.Mock
}

// NewCursor returns a cursor whose All yields documents.
func NewCursor(documents []models.Document) *MockCursor {
	c := &MockCursor{}
	c.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		if target, ok := args.Get(1).(*[]models.Document); ok {
			out := make([]models.Document, 0, len(documents))
			for _, d := range documents {
				out = append(out, cloneDocument(d))
			}
			*target = out
		}
	}).Maybe()
	c.On("Close", mock.Anything).Return(nil).Maybe()
	return c
}

// All decodes all remaining documents.
func (m *MockCursor) All(ctx context.Context, results interface{}) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

// Close closes the cursor.
func (m *MockCursor) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func cloneDocument(d models.Document) models.Document {
	if d == nil {
		return nil
	}
	out := make(models.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
