package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/routes"
	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/tests/mocks"
	"github.com/unifiedui/docstore-service/tests/testutils"
)

const documentsPath = routes.BasePath + "/databases/store/collections/users/documents"

func setupDocumentsRouter(svc *mocks.MockDocstoreService) *gin.Engine {
	router := testutils.SetupTestRouter()
	routes.Setup(router, &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(svc),
		DocumentsHandler: handlers.NewDocumentsHandler(svc),
	})
	return router
}

func TestDocumentsHandler_InsertOne(t *testing.T) {
	// Setup
	svc := &mocks.MockDocstoreService{}
	id := primitive.NewObjectID()
	svc.On("InsertOne", mock.Anything, "store", "users", models.Document{"Name": "John", "Age": int32(30)}).
		Return(&docdb.InsertOneResult{InsertedID: id}, nil)

	router := setupDocumentsRouter(svc)

	// Execute
	w := testutils.PerformRequest(router, http.MethodPost, documentsPath, `{"Name": "John", "Age": 30}`, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusCreated, w)

	var response map[string]map[string]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, id.Hex(), response["insertedId"]["$oid"])

	svc.AssertExpectations(t)
}

func TestDocumentsHandler_InsertOne_InvalidBody(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	for _, body := range []string{`not json`, `null`, ``} {
		w := testutils.PerformRequest(router, http.MethodPost, documentsPath, body, nil)

		testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	}
	svc.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentsHandler_FindOne(t *testing.T) {
	// Setup
	svc := &mocks.MockDocstoreService{}
	id := primitive.NewObjectID()
	svc.On("FindOne", mock.Anything, "store", "users", models.Query{"_id": id}).
		Return(models.Document{"_id": id, "Name": "John"}, nil)

	router := setupDocumentsRouter(svc)

	// Execute
	body := `{"query": {"_id": {"$oid": "` + id.Hex() + `"}}}`
	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var response struct {
		Document struct {
			ID   map[string]string `json:"_id"`
			Name string            `json:"Name"`
		} `json:"document"`
	}
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, id.Hex(), response.Document.ID["$oid"])
	assert.Equal(t, "John", response.Document.Name)
}

func TestDocumentsHandler_FindOne_NotFound(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindOne", mock.Anything, "store", "users", models.Query{"Name": "Nobody"}).
		Return(nil, nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one", `{"query": {"Name": "Nobody"}}`, nil)

	testutils.AssertStatusCode(t, http.StatusNotFound, w)

	var response map[string]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeNotFound, response["code"])
}

func TestDocumentsHandler_FindOne_EmptyBodyMatchesAll(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindOne", mock.Anything, "store", "users", models.Query(nil)).
		Return(models.Document{"_id": 1}, nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	svc.AssertExpectations(t)
}

func TestDocumentsHandler_FindOne_TransportError(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindOne", mock.Anything, "store", "users", mock.Anything).
		Return(nil, errors.New("server selection timeout"))

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one", `{"query": {}}`, nil)

	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
}

func TestDocumentsHandler_FindOneValue(t *testing.T) {
	tests := []struct {
		name     string
		result   models.Optional[interface{}]
		expected map[string]interface{}
	}{
		{
			name:     "present",
			result:   models.Some[interface{}]("male"),
			expected: map[string]interface{}{"found": true, "value": "male"},
		},
		{
			name:     "present null",
			result:   models.Some[interface{}](nil),
			expected: map[string]interface{}{"found": true, "value": nil},
		},
		{
			name:     "absent",
			result:   models.None[interface{}](),
			expected: map[string]interface{}{"found": false, "value": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockDocstoreService{}
			svc.On("FindOneValue", mock.Anything, "store", "users", models.Query{"Name": "John"}, "Sex").
				Return(tt.result, nil)

			router := setupDocumentsRouter(svc)

			w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one/value", `{"query": {"Name": "John"}, "key": "Sex"}`, nil)

			testutils.AssertStatusCode(t, http.StatusOK, w)
			var response map[string]interface{}
			testutils.ParseJSONResponse(t, w, &response)
			assert.Equal(t, tt.expected, response)
		})
	}
}

func TestDocumentsHandler_FindOneValue_MissingKey(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one/value", `{"query": {"Name": "John"}}`, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}

func TestDocumentsHandler_FindOneValues(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindOneValues", mock.Anything, "store", "users", models.Query{"Name": "John"}, []string{"Age", "Sex"}).
		Return(models.Some(models.Document{"Age": int32(30), "Sex": "male"}), nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one/values",
		`{"query": {"Name": "John"}, "keys": ["Age", "Sex"]}`, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response map[string]interface{}
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, true, response["found"])
	assert.Equal(t, map[string]interface{}{"Age": float64(30), "Sex": "male"}, response["values"])
}

func TestDocumentsHandler_FindOneValues_EmptyKeys(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find-one/values", `{"keys": []}`, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}

func TestDocumentsHandler_FindAll(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindAll", mock.Anything, "store", "users", int64(2), models.Query{"status": "active"}).
		Return([]models.Document{{"_id": int32(1)}, {"_id": int32(2)}}, nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find", `{"query": {"status": "active"}, "limit": 2}`, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response struct {
		Documents []map[string]interface{} `json:"documents"`
		Count     int                      `json:"count"`
	}
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.Documents, 2)
}

func TestDocumentsHandler_FindAll_InvalidLimit(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("FindAll", mock.Anything, "store", "users", int64(0), models.Query(nil)).
		Return(nil, domainerrors.NewValidationError("invalid limit", "limit must be positive, got 0"))

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/find", `{}`, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	var response map[string]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeValidation, response["code"])
}

func TestDocumentsHandler_UpdateOne(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("UpdateOne", mock.Anything, "store", "users", models.Query{"Name": "John"}, models.Update{"Age": int32(31)}).
		Return(nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/update-one", `{"query": {"Name": "John"}, "update": {"Age": 31}}`, nil)

	testutils.AssertStatusCode(t, http.StatusNoContent, w)
	svc.AssertExpectations(t)
}

func TestDocumentsHandler_UpdateOne_RequiresFields(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	for _, body := range []string{`{"query": {}}`, `{"query": {}, "update": {}}`} {
		w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/update-one", body, nil)

		testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	}
}

func TestDocumentsHandler_DeleteOneAndMany(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("DeleteOne", mock.Anything, "store", "users", models.Query{"Name": "John"}).Return(nil)
	svc.On("DeleteMany", mock.Anything, "store", "users", models.Query{"status": "inactive"}).Return(nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/delete-one", `{"query": {"Name": "John"}}`, nil)
	testutils.AssertStatusCode(t, http.StatusNoContent, w)

	w = testutils.PerformRequest(router, http.MethodPost, documentsPath+"/delete-many", `{"query": {"status": "inactive"}}`, nil)
	testutils.AssertStatusCode(t, http.StatusNoContent, w)

	svc.AssertExpectations(t)
}

func TestDocumentsHandler_DeleteOneValues_NotFound(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("DeleteOneValues", mock.Anything, "store", "users", models.Query{"Name": "Nobody"}, []string{"Age"}).
		Return(domainerrors.NewNotFoundError("document", "store.users"))

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/delete-one/values", `{"query": {"Name": "Nobody"}, "keys": ["Age"]}`, nil)

	testutils.AssertStatusCode(t, http.StatusNotFound, w)
}

func TestDocumentsHandler_Move(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("MoveToDatabase", mock.Anything, "store", "users", models.Query{"Name": "John"}, "archive", "old_users").
		Return(nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/move",
		`{"query": {"Name": "John"}, "database": "archive", "collection": "old_users"}`, nil)

	testutils.AssertStatusCode(t, http.StatusNoContent, w)
	svc.AssertExpectations(t)
}

func TestDocumentsHandler_Move_Incomplete(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("MoveToDatabase", mock.Anything, "store", "users", mock.Anything, "archive", "old_users").
		Return(domainerrors.NewMoveIncompleteError("store.users", "archive.old_users", errors.New("connection reset")))

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/move",
		`{"query": {"Name": "John"}, "database": "archive", "collection": "old_users"}`, nil)

	testutils.AssertStatusCode(t, http.StatusInternalServerError, w)
	var response map[string]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, domainerrors.ErrCodeMoveIncomplete, response["code"])
}

func TestDocumentsHandler_Move_RequiresDestination(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/move", `{"query": {"Name": "John"}}`, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}

func TestDocumentsHandler_Count(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("CountDocuments", mock.Anything, "store", "users", models.Query(nil)).Return(int64(7), nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/count", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response map[string]int64
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, int64(7), response["count"])
}

func TestDocumentsHandler_ListCollections(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	svc.On("ListCollections", mock.Anything, "store").Return(nil, nil)

	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodGet, routes.BasePath+"/databases/store/collections", nil, nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	var response map[string][]string
	testutils.ParseJSONResponse(t, w, &response)
	assert.Equal(t, []string{}, response["collections"])
}

func TestDocumentsHandler_InvalidQuery(t *testing.T) {
	svc := &mocks.MockDocstoreService{}
	router := setupDocumentsRouter(svc)

	w := testutils.PerformRequest(router, http.MethodPost, documentsPath+"/count", `{"query": {"_id": {"$oid": "not-hex"}}}`, nil)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}
