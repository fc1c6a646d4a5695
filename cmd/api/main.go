package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jpp0ca/MovieCatalog-API/internal/adapters"
	handler "github.com/jpp0ca/MovieCatalog-API/internal/adapters/http"
	"github.com/jpp0ca/MovieCatalog-API/internal/adapters/omdb"
	"github.com/jpp0ca/MovieCatalog-API/internal/app"
	"github.com/jpp0ca/MovieCatalog-API/internal/config"

	_ "github.com/jpp0ca/MovieCatalog-API/docs"
)

// @title			MovieCatalog API
// @version		1.0
// @description	API aggregating OMDb keyword searches into a deduplicated popular movie list,
// @description	with per-movie detail lookups. Results can be streamed as Server-Sent Events.

// @contact.name	MovieCatalog API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()
	logger := adapters.NewLogger(os.Stderr, cfg.SlogLevel())
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Create provider adapters
	httpClient := adapters.NewHTTPClient(adapters.Timeouts{
		Connect: cfg.ConnectTimeout,
		Read:    cfg.ReadTimeout,
		Write:   cfg.WriteTimeout,
	}, logger)
	omdbProvider, err := omdb.NewProvider(cfg.OMDbAPIKey, cfg.OMDbBaseURL,
		omdb.WithHTTPClient(httpClient),
		omdb.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create omdb provider", slog.Any("error", err))
		os.Exit(1)
	}

	// Register providers
	registry := adapters.NewProviderRegistry()
	registry.Register(omdbProvider)

	// Create application service
	movieService, err := app.NewService(registry, app.Options{
		Provider: cfg.Provider,
		Terms:    cfg.SearchTerms,
		Limit:    cfg.MaxMovies,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to create movie service", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(movieService)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	logger.Info("starting MovieCatalog API",
		slog.String("addr", addr),
		slog.String("provider", cfg.Provider),
		slog.Any("registered_providers", registry.Available()),
		slog.Any("search_terms", cfg.SearchTerms),
		slog.Int("max_movies", cfg.MaxMovies),
	)
	logger.Info("swagger UI available", slog.String("url", "http://localhost"+addr+"/swagger/index.html"))

	if err := r.Run(addr); err != nil {
		logger.Error("failed to start server", slog.Any("error", err))
		os.Exit(1)
	}
}
