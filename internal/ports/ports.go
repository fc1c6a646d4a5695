package ports

import (
	"context"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

// MovieProvider defines the contract that every movie search backend must
// implement. This is the primary driven port of the hexagonal architecture.
type MovieProvider interface {
	// SearchMovies runs one keyword search and returns the mapped records in
	// provider order. A search with no matches returns an empty slice.
	SearchMovies(ctx context.Context, query domain.SearchQuery) ([]domain.Movie, error)

	// GetMovieDetails looks up a single movie by its external identifier.
	GetMovieDetails(ctx context.Context, query domain.DetailQuery) (*domain.Movie, error)

	// Name returns the provider identifier (e.g., "omdb").
	Name() string
}

// MovieService defines the driving port consumed by the HTTP API and the CLI.
// Both operations return a stream that is closed after its terminal emission.
type MovieService interface {
	// FetchPopularMovies searches every term in order, merges the results by
	// movie ID and emits at most limit movies.
	FetchPopularMovies(ctx context.Context, terms []string, limit int) <-chan domain.Result[[]domain.Movie]

	// FetchMovieDetails emits Loading followed by exactly one terminal result.
	FetchMovieDetails(ctx context.Context, id string) <-chan domain.Result[domain.Movie]

	// DefaultTerms returns the configured search terms.
	DefaultTerms() []string

	// DefaultLimit returns the configured maximum number of movies.
	DefaultLimit() int
}
