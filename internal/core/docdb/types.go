// Package docdb provides the document database type constants.
package docdb

// Type represents the type of document database.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
)

const (
	// DefaultHost is the host used when none is configured.
	DefaultHost = "localhost"
	// DefaultPort is the standard MongoDB port.
	DefaultPort = 27017
)
