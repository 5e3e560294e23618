// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// QueryRequest carries a filter in MongoDB Extended JSON.
// An omitted or null query matches every document.
type QueryRequest struct {
	Query json.RawMessage `json:"query,omitempty" swaggertype:"object"`
}

// ParsedQuery decodes the query.
func (r *QueryRequest) ParsedQuery() (models.Query, error) {
	doc, err := ParseDocument(r.Query)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return models.Query(doc), nil
}

// FindOneValueRequest represents the request for reading one key.
type FindOneValueRequest struct {
	QueryRequest
	Key string `json:"key" binding:"required"`
}

// FindOneValuesRequest represents the request for reading several keys.
type FindOneValuesRequest struct {
	QueryRequest
	Keys []string `json:"keys" binding:"required,min=1"`
}

// FindAllRequest represents the request for listing documents.
type FindAllRequest struct {
	QueryRequest
	Limit int64 `json:"limit"`
}

// UpdateOneRequest represents the request for setting fields on a document.
type UpdateOneRequest struct {
	QueryRequest
	Update json.RawMessage `json:"update" binding:"required" swaggertype:"object"`
}

// ParsedUpdate decodes the update fields.
func (r *UpdateOneRequest) ParsedUpdate() (models.Update, error) {
	doc, err := ParseDocument(r.Update)
	if err != nil {
		return nil, fmt.Errorf("invalid update: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("invalid update: no fields to set")
	}
	return models.Update(doc), nil
}

// DeleteOneValuesRequest represents the request for removing keys from a document.
type DeleteOneValuesRequest struct {
	QueryRequest
	Keys []string `json:"keys" binding:"required,min=1"`
}

// MoveRequest represents the request for moving a document to another collection.
type MoveRequest struct {
	QueryRequest
	Database   string `json:"database" binding:"required"`
	Collection string `json:"collection" binding:"required"`
}

// ParseDocument decodes an Extended JSON object. Empty input and null yield nil.
func ParseDocument(raw json.RawMessage) (models.Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var doc bson.M
	if err := bson.UnmarshalExtJSON(trimmed, false, &doc); err != nil {
		return nil, err
	}
	return models.Document(doc), nil
}
