package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/pkg/metrics"
)

func scrape(t *testing.T, handler http.Handler) string {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestSetup_ExposesOperationMetrics(t *testing.T) {
	m, handler, err := metrics.Setup("docstore-test")
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordOperation(ctx, "find_one", 5*time.Millisecond, nil)
	m.RecordOperation(ctx, "move_to_database", 5*time.Millisecond, errors.New("boom"))

	body := scrape(t, handler)
	assert.Contains(t, body, "docstore_operations_total")
	assert.Contains(t, body, `operation="find_one"`)
	assert.Contains(t, body, `outcome="error"`)
	assert.Contains(t, body, "docstore_operation_duration_seconds")
}

func TestSetup_ExposesHTTPMetrics(t *testing.T) {
	m, handler, err := metrics.Setup("docstore-test")
	require.NoError(t, err)

	m.RecordHTTPRequest(context.Background(), http.MethodPost, "/documents/count", http.StatusOK, time.Millisecond)

	body := scrape(t, handler)
	assert.Contains(t, body, "docstore_http_requests_total")
	assert.Contains(t, body, `method="POST"`)
}

func TestSetup_CanBeCalledTwice(t *testing.T) {
	_, _, err := metrics.Setup("first")
	require.NoError(t, err)
	_, _, err = metrics.Setup("second")
	assert.NoError(t, err)
}
