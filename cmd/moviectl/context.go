package main

import (
	"io"
	"log/slog"
	"sync"

	"github.com/jpp0ca/MovieCatalog-API/internal/adapters"
	"github.com/jpp0ca/MovieCatalog-API/internal/adapters/omdb"
	"github.com/jpp0ca/MovieCatalog-API/internal/app"
	"github.com/jpp0ca/MovieCatalog-API/internal/config"
	"github.com/jpp0ca/MovieCatalog-API/internal/ports"
)

type serviceFactory func(logOut io.Writer) (ports.MovieService, error)

type commandContext struct {
	factory serviceFactory

	serviceOnce sync.Once
	service     ports.MovieService
	serviceErr  error
}

// newCommandContext uses factory to build the movie service, or wires the
// OMDb provider from the environment when factory is nil.
func newCommandContext(factory serviceFactory) *commandContext {
	if factory == nil {
		factory = serviceFromConfig
	}
	return &commandContext{factory: factory}
}

func (c *commandContext) ensureService(logOut io.Writer) (ports.MovieService, error) {
	c.serviceOnce.Do(func() {
		c.service, c.serviceErr = c.factory(logOut)
	})
	return c.service, c.serviceErr
}

func serviceFromConfig(logOut io.Writer) (ports.MovieService, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := adapters.NewLogger(logOut, cfg.SlogLevel())
	slog.SetDefault(logger)

	httpClient := adapters.NewHTTPClient(adapters.Timeouts{
		Connect: cfg.ConnectTimeout,
		Read:    cfg.ReadTimeout,
		Write:   cfg.WriteTimeout,
	}, logger)
	provider, err := omdb.NewProvider(cfg.OMDbAPIKey, cfg.OMDbBaseURL,
		omdb.WithHTTPClient(httpClient),
		omdb.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	registry := adapters.NewProviderRegistry()
	registry.Register(provider)

	return app.NewService(registry, app.Options{
		Provider: cfg.Provider,
		Terms:    cfg.SearchTerms,
		Limit:    cfg.MaxMovies,
		Logger:   logger,
	})
}
