// Package main is the entry point for the UnifiedUI Docstore Service.
// @title UnifiedUI Docstore Service API
// @version 1.0
// @description Document store operations over MongoDB addressed by database and collection
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/unifiedui/docstore-service
// @contact.email support@unifiedui.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/docstore-service/docs"
	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/api/routes"
	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
	"github.com/unifiedui/docstore-service/internal/pkg/logging"
	"github.com/unifiedui/docstore-service/internal/pkg/metrics"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: config.ServiceName,
	})

	ctx := context.Background()

	// Initialize document db client using factory pattern
	docDBClient, err := createDocDBClient(ctx, cfg.DocDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize document db client")
	}

	// Initialize metrics
	var (
		meters         *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		meters, metricsHandler, err = metrics.Setup(config.ServiceName)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize metrics")
		}
	}

	// Initialize docstore service
	serviceCfg := &docstore.Config{
		Client: docDBClient,
		Logger: &logger,
	}
	if meters != nil {
		serviceCfg.Metrics = meters
	}
	docstoreService, err := docstore.NewService(serviceCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize docstore service")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, docstoreService, meters, metricsHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	// The connection outlives every request; release it last.
	if err := docDBClient.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to close document db client")
	}

	logger.Info().Msg("server exited")
}

// createDocDBClient creates a document database client based on the configuration.
func createDocDBClient(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	docDBType := docdb.Type(cfg.Type)

	switch docDBType {
	case docdb.TypeMongoDB:
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			Host:           cfg.Host,
			Port:           cfg.Port,
			ConnectTimeout: cfg.ConnectTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", cfg.Type)
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, docstoreService docstore.Service, meters *metrics.Metrics, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()
	var metricsMw *middleware.MetricsMiddleware
	if meters != nil {
		metricsMw = middleware.NewMetricsMiddleware(meters)
	}

	router.Use(middleware.NewCORSMiddleware(middleware.CORSConfigWithOrigins(cfg.CORS.AllowOrigins)))

	// Create handlers
	healthHandler := handlers.NewHealthHandler(docstoreService)
	documentsHandler := handlers.NewDocumentsHandler(docstoreService)

	// Setup routes
	routesCfg := &routes.Config{
		HealthHandler:    healthHandler,
		DocumentsHandler: documentsHandler,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, metricsMw)

	// Prometheus scrape endpoint
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
