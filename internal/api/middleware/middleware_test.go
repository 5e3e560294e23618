package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/tests/testutils"
)

func TestHandleError_DomainError(t *testing.T) {
	router := testutils.SetupTestRouter()
	router.GET("/fail", func(c *gin.Context) {
		middleware.HandleError(c, domainerrors.NewNotFoundError("document", "store.users"))
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/fail", nil, nil)

	testutils.AssertStatusCode(t, http.StatusNotFound, w)
	var response dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "NOT_FOUND", response.Code)
	assert.Equal(t, "store.users", response.Details)
}

func TestHandleError_PlainError(t *testing.T) {
	router := testutils.SetupTestRouter()
	router.GET("/fail", func(c *gin.Context) {
		middleware.HandleError(c, errors.New("boom"))
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/fail", nil, nil)

	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
	var response dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "INTERNAL_ERROR", response.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorMiddleware_Recovery(t *testing.T) {
	router := testutils.SetupTestRouter()
	router.Use(middleware.NewErrorMiddleware().Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/panic", nil, nil)

	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	mw := middleware.NewLoggingMiddlewareWithLogger(logger)

	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger(), mw.Logger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	// Generated
	w := testutils.PerformRequest(router, http.MethodGet, "/ping", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
	assert.Contains(t, buf.String(), generated)

	// Propagated
	w = testutils.PerformRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}

func TestLoggingMiddleware_ScopedFieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	mw := middleware.NewLoggingMiddlewareWithLogger(zerolog.New(&buf))

	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger(), mw.Logger())
	router.GET("/databases/:database/collections/:collection", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	testutils.PerformRequest(router, http.MethodGet, "/databases/store/collections/users", nil, nil)
	line := buf.String()
	assert.Contains(t, line, `"level":"warn"`)
	assert.Contains(t, line, `"database":"store"`)
	assert.Contains(t, line, `"collection":"users"`)
	assert.Contains(t, line, `"route":"/databases/:database/collections/:collection"`)

	buf.Reset()
	testutils.PerformRequest(router, http.MethodGet, "/boom", nil, nil)
	line = buf.String()
	assert.Contains(t, line, `"level":"error"`)
	assert.NotContains(t, line, `"database"`)
}

func TestHandleError_LogsServerSideDomainErrors(t *testing.T) {
	var buf bytes.Buffer
	mw := middleware.NewLoggingMiddlewareWithLogger(zerolog.New(&buf))

	router := testutils.SetupTestRouter()
	router.Use(mw.RequestLogger())
	router.GET("/move", func(c *gin.Context) {
		middleware.HandleError(c, domainerrors.NewMoveIncompleteError("a.b", "c.d", errors.New("delete failed")))
	})
	router.GET("/missing", func(c *gin.Context) {
		middleware.HandleError(c, domainerrors.NewNotFoundError("document", "a.b"))
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/move", nil, map[string]string{"X-Request-ID": "req-9"})
	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
	assert.Contains(t, buf.String(), `"code":"MOVE_INCOMPLETE"`)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)

	buf.Reset()
	w = testutils.PerformRequest(router, http.MethodGet, "/missing", nil, nil)
	testutils.AssertStatusCode(t, http.StatusNotFound, w)
	assert.Empty(t, buf.String())
}

func TestCORSMiddleware(t *testing.T) {
	cfg := middleware.CORSConfigWithOrigins([]string{"https://app.example"})

	router := testutils.SetupTestRouter()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/resource", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodGet, "/resource", nil, map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))

	w = testutils.PerformRequest(router, http.MethodGet, "/resource", nil, map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = testutils.PerformRequest(router, http.MethodOptions, "/resource", nil, map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSConfigWithOrigins_EmptyKeepsDefaults(t *testing.T) {
	cfg := middleware.CORSConfigWithOrigins(nil)

	assert.Equal(t, middleware.DefaultCORSConfig().AllowOrigins, cfg.AllowOrigins)
}

type recordedRequest struct {
	method string
	path   string
	status int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *fakeRecorder) RecordHTTPRequest(_ context.Context, method, path string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, recordedRequest{method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}

	router := testutils.SetupTestRouter()
	router.Use(middleware.NewMetricsMiddleware(recorder).Handler())
	router.GET("/databases/:database", func(c *gin.Context) { c.Status(http.StatusOK) })

	testutils.PerformRequest(router, http.MethodGet, "/databases/store", nil, nil)
	testutils.PerformRequest(router, http.MethodGet, "/nowhere", nil, nil)

	require.Len(t, recorder.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/databases/:database", http.StatusOK}, recorder.requests[0])
	assert.Equal(t, recordedRequest{http.MethodGet, "unmatched", http.StatusNotFound}, recorder.requests[1])
}
