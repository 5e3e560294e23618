package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// MockDocstoreService is a mock implementation of docstore.Service.
type MockDocstoreService struct {
	mock.Mock
}

// InsertOne inserts a document.
func (m *MockDocstoreService) InsertOne(ctx context.Context, database, collection string, document models.Document) (*docdb.InsertOneResult, error) {
	args := m.Called(ctx, database, collection, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.InsertOneResult), args.Error(1)
}

// FindOne finds a document.
func (m *MockDocstoreService) FindOne(ctx context.Context, database, collection string, query models.Query) (models.Document, error) {
	args := m.Called(ctx, database, collection, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

// FindOneValue finds one value.
func (m *MockDocstoreService) FindOneValue(ctx context.Context, database, collection string, query models.Query, key string) (models.Optional[interface{}], error) {
	args := m.Called(ctx, database, collection, query, key)
	return args.Get(0).(models.Optional[interface{}]), args.Error(1)
}

// FindOneValues finds several values.
func (m *MockDocstoreService) FindOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) (models.Optional[models.Document], error) {
	args := m.Called(ctx, database, collection, query, keys)
	return args.Get(0).(models.Optional[models.Document]), args.Error(1)
}

// FindAll lists documents.
func (m *MockDocstoreService) FindAll(ctx context.Context, database, collection string, limit int64, query models.Query) ([]models.Document, error) {
	args := m.Called(ctx, database, collection, limit, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// UpdateOne updates a document.
func (m *MockDocstoreService) UpdateOne(ctx context.Context, database, collection string, query models.Query, update models.Update) error {
	args := m.Called(ctx, database, collection, query, update)
	return args.Error(0)
}

// DeleteOne deletes a document.
func (m *MockDocstoreService) DeleteOne(ctx context.Context, database, collection string, query models.Query) error {
	args := m.Called(ctx, database, collection, query)
	return args.Error(0)
}

// DeleteMany deletes documents.
func (m *MockDocstoreService) DeleteMany(ctx context.Context, database, collection string, query models.Query) error {
	args := m.Called(ctx, database, collection, query)
	return args.Error(0)
}

// DeleteOneValues removes keys from a document.
func (m *MockDocstoreService) DeleteOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) error {
	args := m.Called(ctx, database, collection, query, keys)
	return args.Error(0)
}

// MoveToDatabase moves a document.
func (m *MockDocstoreService) MoveToDatabase(ctx context.Context, database, collection string, query models.Query, newDatabase, newCollection string) error {
	args := m.Called(ctx, database, collection, query, newDatabase, newCollection)
	return args.Error(0)
}

// CountDocuments counts documents.
func (m *MockDocstoreService) CountDocuments(ctx context.Context, database, collection string, query models.Query) (int64, error) {
	args := m.Called(ctx, database, collection, query)
	return args.Get(0).(int64), args.Error(1)
}

// ListCollections lists collection names.
func (m *MockDocstoreService) ListCollections(ctx context.Context, database string) ([]string, error) {
	args := m.Called(ctx, database)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Ping checks the connection.
func (m *MockDocstoreService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMetricsRecorder is a mock implementation of docstore.MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

// RecordOperation records an operation.
func (m *MockMetricsRecorder) RecordOperation(ctx context.Context, operation string, duration time.Duration, err error) {
	m.Called(ctx, operation, duration, err)
}
