// Package mongodb provides MongoDB client implementation.
package mongodb

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
)

// DefaultConnectTimeout bounds the initial connect and ping.
const DefaultConnectTimeout = 10 * time.Second

// Client implements the docdb.Client interface for MongoDB.
type Client struct {
	client *mongo.Client
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	Host           string
	Port           int
	ConnectTimeout time.Duration
}

// URI returns the connection string for the configured address.
// Empty values fall back to localhost:27017.
func (c *ClientConfig) URI() string {
	host := c.Host
	if host == "" {
		host = docdb.DefaultHost
	}
	port := c.Port
	if port == 0 {
		port = docdb.DefaultPort
	}
	return "mongodb://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// Validate checks the configuration before a connection is attempted.
func (c *ClientConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid mongodb port: %d", c.Port)
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("connect timeout cannot be negative")
	}
	return nil
}

// NewClient creates a new MongoDB client and verifies the connection.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		config = &ClientConfig{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.ConnectTimeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}

	clientOpts := options.Client().
		ApplyURI(config.URI()).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client}, nil
}

// Database returns the named database.
func (c *Client) Database(name string) docdb.Database {
	return NewDatabase(c.client.Database(name))
}

// Collection returns the named collection of the named database.
func (c *Client) Collection(database, collection string) docdb.Collection {
	return NewCollection(c.client.Database(database).Collection(collection))
}

// Ping verifies the connection to MongoDB.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
