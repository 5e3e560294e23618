package dto

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// ListCollectionsResponse represents the collection names of a database.
type ListCollectionsResponse struct {
	Collections []string `json:"collections" bson:"collections"`
}

// InsertOneResponse represents the acknowledgment of an insert.
type InsertOneResponse struct {
	InsertedID interface{} `json:"insertedId" bson:"insertedId" swaggertype:"object"`
}

// FindOneResponse wraps a single document.
type FindOneResponse struct {
	Document models.Document `json:"document" bson:"document" swaggertype:"object"`
}

// FindOneValueResponse carries one value. Value is null when Found is false.
type FindOneValueResponse struct {
	Found bool        `json:"found" bson:"found"`
	Value interface{} `json:"value" bson:"value" swaggertype:"object"`
}

// FindOneValuesResponse carries the requested keys. Values is null when Found is false.
type FindOneValuesResponse struct {
	Found  bool            `json:"found" bson:"found"`
	Values models.Document `json:"values" bson:"values" swaggertype:"object"`
}

// FindAllResponse represents a list of documents.
type FindAllResponse struct {
	Documents []models.Document `json:"documents" bson:"documents" swaggertype:"array,object"`
	Count     int               `json:"count" bson:"count"`
}

// CountResponse represents a document count.
type CountResponse struct {
	Count int64 `json:"count" bson:"count"`
}

// MarshalExtJSON renders a response as relaxed Extended JSON so identifiers and
// dates keep their type markers.
func MarshalExtJSON(v interface{}) ([]byte, error) {
	return bson.MarshalExtJSON(v, false, false)
}
