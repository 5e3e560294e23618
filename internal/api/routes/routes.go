// Package routes defines the HTTP routes for the docstore service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
)

// BasePath is the prefix of every API route.
const BasePath = "/api/v1/docstore-service"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	DocumentsHandler *handlers.DocumentsHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		// Health check routes
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		database := v1.Group("/databases/:database")
		{
			database.GET("/collections", cfg.DocumentsHandler.ListCollections)

			documents := database.Group("/collections/:collection/documents")
			{
				documents.POST("", cfg.DocumentsHandler.InsertOne)

				// Reads
				documents.POST("/find-one", cfg.DocumentsHandler.FindOne)
				documents.POST("/find-one/value", cfg.DocumentsHandler.FindOneValue)
				documents.POST("/find-one/values", cfg.DocumentsHandler.FindOneValues)
				documents.POST("/find", cfg.DocumentsHandler.FindAll)
				documents.POST("/count", cfg.DocumentsHandler.Count)

				// Writes
				documents.POST("/update-one", cfg.DocumentsHandler.UpdateOne)
				documents.POST("/delete-one", cfg.DocumentsHandler.DeleteOne)
				documents.POST("/delete-many", cfg.DocumentsHandler.DeleteMany)
				documents.POST("/delete-one/values", cfg.DocumentsHandler.DeleteOneValues)
				documents.POST("/move", cfg.DocumentsHandler.Move)
			}
		}
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
// metricsMw may be nil when metrics are disabled.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, metricsMw *middleware.MetricsMiddleware) {
	// Apply global middleware
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	if metricsMw != nil {
		r.Use(metricsMw.Handler())
	}
	r.Use(errorMw.Recovery())

	Setup(r, cfg)
}
