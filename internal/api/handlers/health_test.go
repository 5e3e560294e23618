// Package handlers_test provides unit tests for the API handlers.
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/tests/mocks"
	"github.com/unifiedui/docstore-service/tests/testutils"
)

func TestHealthHandler_Health_Healthy(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockDocDB.On("Ping", mock.Anything).Return(nil)

	handler := handlers.NewHealthHandler(mockDocDB)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Components["docdb"])

	mockDocDB.AssertExpectations(t)
}

func TestHealthHandler_Health_DocDBUnhealthy(t *testing.T) {
	// Setup
	svc := &mocks.MockDocstoreService{}
	svc.On("Ping", mock.Anything).Return(assert.AnError)

	handler := handlers.NewHealthHandler(svc)

	router := testutils.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/health", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)

	var response dto.HealthResponse
	testutils.ParseJSONResponse(t, w, &response)

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "unhealthy", response.Components["docdb"])
}

func TestHealthHandler_Ready(t *testing.T) {
	// Setup
	svc := &mocks.MockDocstoreService{}
	svc.On("Ping", mock.Anything).Return(nil).Once()
	svc.On("Ping", mock.Anything).Return(assert.AnError).Once()

	handler := handlers.NewHealthHandler(svc)

	router := testutils.SetupTestRouter()
	router.GET("/ready", handler.Ready)

	// Execute & Assert
	w := testutils.PerformRequest(router, "GET", "/ready", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	w = testutils.PerformRequest(router, "GET", "/ready", nil, nil)
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)
}

func TestHealthHandler_Live(t *testing.T) {
	// Setup
	handler := handlers.NewHealthHandler(&mocks.MockDocstoreService{})

	router := testutils.SetupTestRouter()
	router.GET("/live", handler.Live)

	// Execute
	w := testutils.PerformRequest(router, "GET", "/live", nil, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response map[string]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, "alive", response["status"])
}
