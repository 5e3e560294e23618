// Package testutils provides test utilities and helpers.
package testutils

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
)

// Test constants
const (
	TestDatabase   = "store"
	TestCollection = "users"
	TestArchiveDB  = "archive"

	// MongoURIEnv names the server used by integration tests.
	MongoURIEnv = "MONGODB_TEST_URI"
)

// NewTestDocument returns the document used across tests.
func NewTestDocument() models.Document {
	return models.Document{"Name": "John", "Age": int32(30)}
}

// MongoClientConfig returns a client config for the server named by
// MONGODB_TEST_URI, skipping the test when it is unset.
func MongoClientConfig(t *testing.T) *mongodb.ClientConfig {
	t.Helper()

	raw := os.Getenv(MongoURIEnv)
	if raw == "" {
		t.Skipf("%s not set, skipping integration test", MongoURIEnv)
	}

	u, err := url.Parse(raw)
	require.NoError(t, err, "invalid %s", MongoURIEnv)

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		require.NoError(t, err, "invalid port in %s", MongoURIEnv)
	}

	return &mongodb.ClientConfig{
		Host:           u.Hostname(),
		Port:           port,
		ConnectTimeout: 5 * time.Second,
	}
}

// UniqueDatabase returns a database name that no other test run uses.
func UniqueDatabase(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
