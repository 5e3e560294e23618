// Package models provides domain models for the docstore service.
package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

const (
	// IDField is the document level primary key.
	IDField = "_id"

	// SetOperator is the update operator applied to every Update.
	SetOperator = "$set"
)

// Document is a schemaless record. Values are any BSON value: string, number,
// bool, nested Document or bson.M, bson.A, nil or primitive.ObjectID.
type Document map[string]interface{}

// Query is a filter used verbatim against a collection.
type Query map[string]interface{}

// Update holds field values applied with the $set operator.
type Update map[string]interface{}

// ID returns the document identifier, if present.
func (d Document) ID() (interface{}, bool) {
	id, ok := d[IDField]
	return id, ok
}

// Value returns the value stored at key, or None when the key is missing.
// A key holding null is present.
func (d Document) Value(key string) Optional[interface{}] {
	if d == nil {
		return None[interface{}]()
	}
	v, ok := d[key]
	if !ok {
		return None[interface{}]()
	}
	return Some(v)
}

// Values returns the requested keys and their values. If any key is missing
// the whole lookup is None; partial results are never returned.
func (d Document) Values(keys []string) Optional[Document] {
	if d == nil {
		return None[Document]()
	}
	values := make(Document, len(keys))
	for _, key := range keys {
		v, ok := d[key]
		if !ok {
			return None[Document]()
		}
		values[key] = v
	}
	return Some(values)
}

// Without returns a shallow copy of the document with the given keys removed.
// Keys that are not present are ignored.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Filter returns the query as a driver filter. A nil query matches everything.
func (q Query) Filter() bson.M {
	if q == nil {
		return bson.M{}
	}
	return bson.M(q)
}

// IDQuery returns a query matching a single identifier.
func IDQuery(id interface{}) Query {
	return Query{IDField: id}
}

// SetDocument returns the update wrapped in the $set operator.
func (u Update) SetDocument() bson.M {
	fields := bson.M{}
	for k, v := range u {
		fields[k] = v
	}
	return bson.M{SetOperator: fields}
}
