package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// DocumentsHandler exposes the document store operations over HTTP.
type DocumentsHandler struct {
	service docstore.Service
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(service docstore.Service) *DocumentsHandler {
	return &DocumentsHandler{
		service: service,
	}
}

// ListCollections handles GET /databases/{database}/collections
// @Summary List collections
// @Description Returns the collection names of a database
// @Tags Collections
// @Produce json
// @Param database path string true "Database name"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections [get]
func (h *DocumentsHandler) ListCollections(c *gin.Context) {
	names, err := h.service.ListCollections(c.Request.Context(), c.Param("database"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	render(c, http.StatusOK, dto.ListCollectionsResponse{Collections: names})
}

// InsertOne handles POST /databases/{database}/collections/{collection}/documents
// @Summary Insert a document
// @Description Inserts the request body as a new document. The body is MongoDB Extended JSON.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param document body object true "Document"
// @Success 201 {object} dto.InsertOneResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - invalid document"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents [post]
func (h *DocumentsHandler) InsertOne(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("failed to read request body", err.Error()))
		return
	}

	document, err := dto.ParseDocument(raw)
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid document", err.Error()))
		return
	}
	if document == nil {
		middleware.HandleError(c, errors.NewValidationError("invalid document", "request body must be a JSON object"))
		return
	}

	result, err := h.service.InsertOne(c.Request.Context(), c.Param("database"), c.Param("collection"), document)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	render(c, http.StatusCreated, dto.InsertOneResponse{InsertedID: result.InsertedID})
}

// FindOne handles POST .../documents/find-one
// @Summary Find one document
// @Description Returns the first document matching the query
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.QueryRequest true "Query"
// @Success 200 {object} dto.FindOneResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure 404 {object} dto.ErrorResponse "No document matches"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/find-one [post]
func (h *DocumentsHandler) FindOne(c *gin.Context) {
	var req dto.QueryRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req)
	if !ok {
		return
	}

	database, collection := c.Param("database"), c.Param("collection")
	document, err := h.service.FindOne(c.Request.Context(), database, collection, query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if document == nil {
		middleware.HandleError(c, errors.NewNotFoundError("document", database+"."+collection))
		return
	}

	render(c, http.StatusOK, dto.FindOneResponse{Document: document})
}

// FindOneValue handles POST .../documents/find-one/value
// @Summary Read one value
// @Description Returns the value of a key in the first matching document. found is false when no document matches, the key is missing, or the document cannot be read.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.FindOneValueRequest true "Query and key"
// @Success 200 {object} dto.FindOneValueResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/find-one/value [post]
func (h *DocumentsHandler) FindOneValue(c *gin.Context) {
	var req dto.FindOneValueRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}

	value, err := h.service.FindOneValue(c.Request.Context(), c.Param("database"), c.Param("collection"), query, req.Key)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	v, found := value.Get()
	render(c, http.StatusOK, dto.FindOneValueResponse{Found: found, Value: v})
}

// FindOneValues handles POST .../documents/find-one/values
// @Summary Read several values
// @Description Returns the requested keys of the first matching document, or found=false if any key is missing
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.FindOneValuesRequest true "Query and keys"
// @Success 200 {object} dto.FindOneValuesResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/find-one/values [post]
func (h *DocumentsHandler) FindOneValues(c *gin.Context) {
	var req dto.FindOneValuesRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}

	values, err := h.service.FindOneValues(c.Request.Context(), c.Param("database"), c.Param("collection"), query, req.Keys)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	v, found := values.Get()
	render(c, http.StatusOK, dto.FindOneValuesResponse{Found: found, Values: v})
}

// FindAll handles POST .../documents/find
// @Summary Find documents
// @Description Returns up to limit documents matching the query in server order
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.FindAllRequest true "Query and limit"
// @Success 200 {object} dto.FindAllResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/find [post]
func (h *DocumentsHandler) FindAll(c *gin.Context) {
	var req dto.FindAllRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}

	documents, err := h.service.FindAll(c.Request.Context(), c.Param("database"), c.Param("collection"), req.Limit, query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	render(c, http.StatusOK, dto.FindAllResponse{Documents: documents, Count: len(documents)})
}

// UpdateOne handles POST .../documents/update-one
// @Summary Update one document
// @Description Sets the update fields on the first matching document. Matching nothing is not an error.
// @Tags Documents
// @Accept json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.UpdateOneRequest true "Query and update"
// @Success 204 "Applied"
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/update-one [post]
func (h *DocumentsHandler) UpdateOne(c *gin.Context) {
	var req dto.UpdateOneRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}
	update, err := req.ParsedUpdate()
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.service.UpdateOne(c.Request.Context(), c.Param("database"), c.Param("collection"), query, update); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOne handles POST .../documents/delete-one
// @Summary Delete one document
// @Description Deletes the first matching document, if any
// @Tags Documents
// @Accept json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.QueryRequest true "Query"
// @Success 204 "Applied"
// @Failure 400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/delete-one [post]
func (h *DocumentsHandler) DeleteOne(c *gin.Context) {
	var req dto.QueryRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req)
	if !ok {
		return
	}

	if err := h.service.DeleteOne(c.Request.Context(), c.Param("database"), c.Param("collection"), query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMany handles POST .../documents/delete-many
// @Summary Delete documents
// @Description Deletes every matching document
// @Tags Documents
// @Accept json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.QueryRequest true "Query"
// @Success 204 "Applied"
// @Failure 400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/delete-many [post]
func (h *DocumentsHandler) DeleteMany(c *gin.Context) {
	var req dto.QueryRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req)
	if !ok {
		return
	}

	if err := h.service.DeleteMany(c.Request.Context(), c.Param("database"), c.Param("collection"), query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOneValues handles POST .../documents/delete-one/values
// @Summary Remove keys from a document
// @Description Removes keys from the first matching document and replaces it by identifier
// @Tags Documents
// @Accept json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.DeleteOneValuesRequest true "Query and keys"
// @Success 204 "Applied"
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 404 {object} dto.ErrorResponse "No document matches"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/delete-one/values [post]
func (h *DocumentsHandler) DeleteOneValues(c *gin.Context) {
	var req dto.DeleteOneValuesRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}

	if err := h.service.DeleteOneValues(c.Request.Context(), c.Param("database"), c.Param("collection"), query, req.Keys); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Move handles POST .../documents/move
// @Summary Move a document
// @Description Copies the first matching document to another collection, then deletes it from this one. The steps are not atomic; MOVE_INCOMPLETE means the document now exists in both.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Source database name"
// @Param collection path string true "Source collection name"
// @Param request body dto.MoveRequest true "Query and destination"
// @Success 204 "Moved"
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 404 {object} dto.ErrorResponse "No document matches"
// @Failure 500 {object} dto.ErrorResponse "Internal server error or MOVE_INCOMPLETE"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/move [post]
func (h *DocumentsHandler) Move(c *gin.Context) {
	var req dto.MoveRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req.QueryRequest)
	if !ok {
		return
	}

	err := h.service.MoveToDatabase(c.Request.Context(), c.Param("database"), c.Param("collection"), query, req.Database, req.Collection)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Count handles POST .../documents/count
// @Summary Count documents
// @Description Counts the documents matching the query
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param request body dto.QueryRequest true "Query"
// @Success 200 {object} dto.CountResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/docstore-service/databases/{database}/collections/{collection}/documents/count [post]
func (h *DocumentsHandler) Count(c *gin.Context) {
	var req dto.QueryRequest
	if !bindRequest(c, &req) {
		return
	}
	query, ok := parseQuery(c, &req)
	if !ok {
		return
	}

	count, err := h.service.CountDocuments(c.Request.Context(), c.Param("database"), c.Param("collection"), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	render(c, http.StatusOK, dto.CountResponse{Count: count})
}

// bindRequest decodes the JSON body. An empty body leaves req at its zero value.
func bindRequest(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		if err := binding.Validator.ValidateStruct(req); err != nil {
			middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
			return false
		}
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

func parseQuery(c *gin.Context, req *dto.QueryRequest) (models.Query, bool) {
	query, err := req.ParsedQuery()
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return nil, false
	}
	return query, true
}

// render writes body as relaxed Extended JSON.
func render(c *gin.Context, status int, body interface{}) {
	data, err := dto.MarshalExtJSON(body)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to encode response", err))
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
