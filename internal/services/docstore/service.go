// Package docstore provides the document store client: a fixed set of document
// operations addressed by database and collection name on one shared connection.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// Operation names used in logs and metrics.
const (
	OpInsertOne       = "insert_one"
	OpFindOne         = "find_one"
	OpFindOneValue    = "find_one_value"
	OpFindOneValues   = "find_one_values"
	OpFindAll         = "find_all"
	OpUpdateOne       = "update_one"
	OpDeleteOne       = "delete_one"
	OpDeleteMany      = "delete_many"
	OpDeleteOneValues = "delete_one_values"
	OpMoveToDatabase  = "move_to_database"
	OpCountDocuments  = "count_documents"
	OpListCollections = "list_collections"
)

// Service defines the document store operations.
type Service interface {
	// InsertOne inserts a document and returns the driver acknowledgment.
	InsertOne(ctx context.Context, database, collection string, document models.Document) (*docdb.InsertOneResult, error)

	// FindOne returns the first document matching query, or nil if none matches.
	FindOne(ctx context.Context, database, collection string, query models.Query) (models.Document, error)

	// FindOneValue returns the value at key in the first matching document.
	// A missing document, a missing key and a decode fault all yield None.
	FindOneValue(ctx context.Context, database, collection string, query models.Query, key string) (models.Optional[interface{}], error)

	// FindOneValues returns the requested keys of the first matching document.
	// It yields None if any key is missing; results are never partial.
	FindOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) (models.Optional[models.Document], error)

	// FindAll returns up to limit documents matching query in server order.
	// A nil query matches every document.
	FindAll(ctx context.Context, database, collection string, limit int64, query models.Query) ([]models.Document, error)

	// UpdateOne sets the update fields on the first matching document.
	// Matching nothing is not an error.
	UpdateOne(ctx context.Context, database, collection string, query models.Query, update models.Update) error

	// DeleteOne deletes the first matching document, if any.
	DeleteOne(ctx context.Context, database, collection string, query models.Query) error

	// DeleteMany deletes every matching document.
	DeleteMany(ctx context.Context, database, collection string, query models.Query) error

	// DeleteOneValues removes keys from the first matching document and replaces it
	// by identifier. It fails with a not found error when nothing matches.
	DeleteOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) error

	// MoveToDatabase copies the first matching document into the destination
	// collection and then deletes it from the source. The steps are not atomic.
	MoveToDatabase(ctx context.Context, database, collection string, query models.Query, newDatabase, newCollection string) error

	// CountDocuments counts documents matching query.
	CountDocuments(ctx context.Context, database, collection string, query models.Query) (int64, error)

	// ListCollections lists the collection names of a database.
	ListCollections(ctx context.Context, database string) ([]string, error)

	// Ping verifies the underlying connection.
	Ping(ctx context.Context) error
}

// MetricsRecorder receives one observation per operation.
type MetricsRecorder interface {
	RecordOperation(ctx context.Context, operation string, duration time.Duration, err error)
}

// Config holds the configuration for the docstore service.
type Config struct {
	Client  docdb.Client
	Logger  *zerolog.Logger
	Metrics MetricsRecorder
}

// service implements the Service interface.
type service struct {
	client  docdb.Client
	logger  zerolog.Logger
	metrics MetricsRecorder
}

// NewService creates a new docstore service.
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("docdb client is required")
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		client:  cfg.Client,
		logger:  logger.With().Str("component", "docstore").Logger(),
		metrics: cfg.Metrics,
	}, nil
}

// observe logs and records the outcome of one operation.
func (s *service) observe(ctx context.Context, op, database, collection string, start time.Time, err error) {
	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordOperation(ctx, op, duration, err)
	}

	event := s.logger.Debug()
	if err != nil {
		event = s.logger.Warn().Err(err)
	}
	event.
		Str("operation", op).
		Str("database", database).
		Str("collection", collection).
		Dur("latency", duration).
		Msg("docstore operation")
}

// InsertOne inserts a single document.
func (s *service) InsertOne(ctx context.Context, database, collection string, document models.Document) (result *docdb.InsertOneResult, err error) {
	defer func(start time.Time) { s.observe(ctx, OpInsertOne, database, collection, start, err) }(time.Now())

	return s.client.Collection(database, collection).InsertOne(ctx, document)
}

// FindOne finds the first matching document.
func (s *service) FindOne(ctx context.Context, database, collection string, query models.Query) (document models.Document, err error) {
	defer func(start time.Time) { s.observe(ctx, OpFindOne, database, collection, start, err) }(time.Now())

	return s.findOne(ctx, database, collection, query)
}

func (s *service) findOne(ctx context.Context, database, collection string, query models.Query) (models.Document, error) {
	var document models.Document
	err := s.client.Collection(database, collection).FindOne(ctx, query.Filter()).Decode(&document)
	if err != nil {
		if errors.Is(err, docdb.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find document in %s.%s: %w", database, collection, err)
	}
	return document, nil
}

// lookup fetches the first matching document for the value paths. Decode faults
// collapse into a missing document; only transport errors are returned.
func (s *service) lookup(ctx context.Context, database, collection string, query models.Query) (models.Document, error) {
	result := s.client.Collection(database, collection).FindOne(ctx, query.Filter())
	if err := result.Err(); err != nil {
		if errors.Is(err, docdb.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find document in %s.%s: %w", database, collection, err)
	}

	var document models.Document
	if err := result.Decode(&document); err != nil {
		s.logger.Debug().Err(err).
			Str("database", database).
			Str("collection", collection).
			Msg("document could not be decoded, treating as absent")
		return nil, nil
	}
	return document, nil
}

// FindOneValue returns one value from the first matching document.
func (s *service) FindOneValue(ctx context.Context, database, collection string, query models.Query, key string) (value models.Optional[interface{}], err error) {
	defer func(start time.Time) { s.observe(ctx, OpFindOneValue, database, collection, start, err) }(time.Now())

	document, err := s.lookup(ctx, database, collection, query)
	if err != nil {
		return models.None[interface{}](), err
	}
	return document.Value(key), nil
}

// FindOneValues returns several values from the first matching document.
func (s *service) FindOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) (values models.Optional[models.Document], err error) {
	defer func(start time.Time) { s.observe(ctx, OpFindOneValues, database, collection, start, err) }(time.Now())

	document, err := s.lookup(ctx, database, collection, query)
	if err != nil {
		return models.None[models.Document](), err
	}
	return document.Values(keys), nil
}

// FindAll lists up to limit matching documents.
func (s *service) FindAll(ctx context.Context, database, collection string, limit int64, query models.Query) (documents []models.Document, err error) {
	defer func(start time.Time) { s.observe(ctx, OpFindAll, database, collection, start, err) }(time.Now())

	if limit <= 0 {
		return nil, domainerrors.NewValidationError("invalid limit", fmt.Sprintf("limit must be positive, got %d", limit))
	}

	cursor, err := s.client.Collection(database, collection).Find(ctx, query.Filter(), &docdb.FindOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s.%s: %w", database, collection, err)
	}
	defer cursor.Close(ctx)

	documents = []models.Document{}
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s.%s: %w", database, collection, err)
	}

	// the server honours the limit; trim anyway so the bound holds for any backend
	if int64(len(documents)) > limit {
		documents = documents[:limit]
	}
	return documents, nil
}

// UpdateOne applies $set to the first matching document.
func (s *service) UpdateOne(ctx context.Context, database, collection string, query models.Query, update models.Update) (err error) {
	defer func(start time.Time) { s.observe(ctx, OpUpdateOne, database, collection, start, err) }(time.Now())

	_, err = s.client.Collection(database, collection).UpdateOne(ctx, query.Filter(), update.SetDocument())
	return err
}

// DeleteOne removes the first matching document.
func (s *service) DeleteOne(ctx context.Context, database, collection string, query models.Query) (err error) {
	defer func(start time.Time) { s.observe(ctx, OpDeleteOne, database, collection, start, err) }(time.Now())

	_, err = s.client.Collection(database, collection).DeleteOne(ctx, query.Filter())
	return err
}

// DeleteMany removes every matching document.
func (s *service) DeleteMany(ctx context.Context, database, collection string, query models.Query) (err error) {
	defer func(start time.Time) { s.observe(ctx, OpDeleteMany, database, collection, start, err) }(time.Now())

	_, err = s.client.Collection(database, collection).DeleteMany(ctx, query.Filter())
	return err
}

// DeleteOneValues fetches, strips keys and replaces the first matching document.
// Another writer touching the document between the fetch and the replace loses its update.
func (s *service) DeleteOneValues(ctx context.Context, database, collection string, query models.Query, keys []string) (err error) {
	defer func(start time.Time) { s.observe(ctx, OpDeleteOneValues, database, collection, start, err) }(time.Now())

	document, err := s.findOne(ctx, database, collection, query)
	if err != nil {
		return err
	}
	if document == nil {
		return domainerrors.NewNotFoundError("document", namespace(database, collection))
	}

	id, ok := document.ID()
	if !ok {
		return domainerrors.NewInternalError("document has no identifier", nil)
	}

	_, err = s.client.Collection(database, collection).ReplaceOne(ctx, models.IDQuery(id).Filter(), document.Without(keys...))
	return err
}

// MoveToDatabase runs fetch, insert and delete in sequence. A failure after the
// insert leaves the document in both collections.
func (s *service) MoveToDatabase(ctx context.Context, database, collection string, query models.Query, newDatabase, newCollection string) (err error) {
	defer func(start time.Time) { s.observe(ctx, OpMoveToDatabase, database, collection, start, err) }(time.Now())

	source := namespace(database, collection)
	destination := namespace(newDatabase, newCollection)

	document, err := s.findOne(ctx, database, collection, query)
	if err != nil {
		return err
	}
	if document == nil {
		return domainerrors.NewNotFoundError("document", source)
	}

	if _, err := s.client.Collection(newDatabase, newCollection).InsertOne(ctx, document); err != nil {
		return fmt.Errorf("failed to copy document to %s: %w", destination, err)
	}

	if _, err := s.client.Collection(database, collection).DeleteOne(ctx, query.Filter()); err != nil {
		s.logger.Error().Err(err).
			Str("source", source).
			Str("destination", destination).
			Msg("move left a duplicate document")
		return domainerrors.NewMoveIncompleteError(source, destination, err)
	}
	return nil
}

// CountDocuments counts matching documents.
func (s *service) CountDocuments(ctx context.Context, database, collection string, query models.Query) (count int64, err error) {
	defer func(start time.Time) { s.observe(ctx, OpCountDocuments, database, collection, start, err) }(time.Now())

	return s.client.Collection(database, collection).CountDocuments(ctx, query.Filter())
}

// ListCollections lists collection names in a database.
func (s *service) ListCollections(ctx context.Context, database string) (names []string, err error) {
	defer func(start time.Time) { s.observe(ctx, OpListCollections, database, "", start, err) }(time.Now())

	return s.client.Database(database).ListCollectionNames(ctx)
}

// Ping verifies the underlying connection.
func (s *service) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx); err != nil {
		return domainerrors.NewServiceUnavailableError("docdb", err)
	}
	return nil
}

func namespace(database, collection string) string {
	return database + "." + collection
}
