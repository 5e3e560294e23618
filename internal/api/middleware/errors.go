package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

const errCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

var internalErrorResponse = dto.ErrorResponse{
	Code:    domainerrors.ErrCodeInternal,
	Message: "internal server error",
}

// ErrorMiddleware handles error recovery and formatting.
type ErrorMiddleware struct{}

// NewErrorMiddleware creates a new ErrorMiddleware.
func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Recovery turns a panicking handler into a 500 with no panic detail in the body.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := GetRequestLogger(c)
				logger.Error().
					Interface("panic", rec).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse)
			}
		}()
		c.Next()
	}
}

// HandleError writes err as a dto.ErrorResponse. Domain errors keep their code
// and status; anything else becomes an opaque INTERNAL_ERROR. Server side
// failures are logged with the request logger.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	logger := GetRequestLogger(c)

	domainErr, ok := domainerrors.GetDomainError(err)
	if !ok {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse)
		return
	}

	if domainErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("code", domainErr.Code).Msg("request failed")
	}
	c.AbortWithStatusJSON(domainErr.HTTPStatus, dto.ErrorResponse{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Details: domainErr.Details,
	})
}

// NotFound returns a 404 handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerrors.ErrCodeNotFound,
			Message: "resource not found",
			Details: c.Request.URL.Path,
		})
	}
}

// MethodNotAllowed returns a 405 handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
			Code:    errCodeMethodNotAllowed,
			Message: "method not allowed",
			Details: c.Request.Method,
		})
	}
}
