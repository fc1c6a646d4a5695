package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jpp0ca/MovieCatalog-API/internal/adapters"
	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
	"github.com/jpp0ca/MovieCatalog-API/internal/ports"
)

// defaultLimit caps aggregated results when no positive limit is configured.
const defaultLimit = 20

// errUnexpected marks failures recovered from a panic.
var errUnexpected = errors.New("unexpected failure")

// Service implements ports.MovieService on top of a single movie provider.
// Each call owns its goroutine and accumulator; nothing is shared between
// streams.
type Service struct {
	provider ports.MovieProvider
	terms    []string
	limit    int
	logger   *slog.Logger
}

// Options configures the defaults applied by Service.
type Options struct {
	Provider string
	Terms    []string
	Limit    int
	Logger   *slog.Logger
}

// NewService resolves the configured provider from the registry and returns a
// service that uses terms and limit as defaults.
func NewService(registry *adapters.ProviderRegistry, opts Options) (*Service, error) {
	provider, err := registry.Get(opts.Provider)
	if err != nil {
		return nil, fmt.Errorf("movie service: %w", err)
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		provider: provider,
		terms:    append([]string(nil), opts.Terms...),
		limit:    limit,
		logger:   logger.With(slog.String("component", "movies")),
	}, nil
}

func (s *Service) DefaultTerms() []string {
	return append([]string(nil), s.terms...)
}

func (s *Service) DefaultLimit() int {
	return s.limit
}

// FetchPopularMovies searches each term sequentially and merges the results by
// movie ID, keeping the first occurrence. A failed term emits a Failure and the
// loop moves on; only the final emission carries the merged set.
func (s *Service) FetchPopularMovies(ctx context.Context, terms []string, limit int) <-chan domain.Result[[]domain.Movie] {
	if limit < 1 {
		limit = s.limit
	}
	terms = append([]string(nil), terms...)
	out := make(chan domain.Result[[]domain.Movie])

	go func() {
		defer close(out)
		em := emitter[[]domain.Movie]{ctx: ctx, out: out}
		defer em.recoverUnexpected(s.logger)

		if !em.emit(domain.Loading[[]domain.Movie]{}) {
			return
		}

		merged := newMovieSet()
		for i, term := range terms {
			if ctx.Err() != nil {
				return
			}
			s.logger.DebugContext(ctx, "searching term", slog.String("term", term), slog.Int("index", i))

			movies, err := s.searchTerm(ctx, term)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.WarnContext(ctx, "search term failed", slog.String("term", term), slog.Any("error", err))
				if !em.emit(domain.Failure[[]domain.Movie]{Message: failureMessage(err), Err: err}) {
					return
				}
				continue
			}
			added := merged.addAll(movies)
			s.logger.DebugContext(ctx, "search term merged",
				slog.String("term", term),
				slog.Int("received", len(movies)),
				slog.Int("added", added),
			)
		}

		if ctx.Err() != nil {
			return
		}
		result := merged.take(limit)
		if len(result) == 0 {
			em.emit(domain.Failure[[]domain.Movie]{Message: domain.MsgNoMoviesFound, Err: domain.ErrNoMoviesFound})
			return
		}

		s.logger.InfoContext(ctx, "popular movies aggregated",
			slog.Int("terms", len(terms)),
			slog.Int("unique", merged.len()),
			slog.Int("returned", len(result)),
		)
		em.emit(domain.Success[[]domain.Movie]{Data: result})
	}()

	return out
}

// searchTerm runs one provider search. A panic is returned as an error so the
// remaining terms still run.
func (s *Service) searchTerm(ctx context.Context, term string) (movies []domain.Movie, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "search term panicked", slog.String("term", term), slog.Any("panic", r))
			movies, err = nil, fmt.Errorf("%w: %v", errUnexpected, r)
		}
	}()
	return s.provider.SearchMovies(ctx, domain.SearchQuery{Keyword: term})
}

func failureMessage(err error) string {
	if errors.Is(err, errUnexpected) {
		return domain.MsgUnknownError
	}
	return domain.MessageOf(err)
}

// FetchMovieDetails emits Loading and then exactly one Success or Failure.
func (s *Service) FetchMovieDetails(ctx context.Context, id string) <-chan domain.Result[domain.Movie] {
	out := make(chan domain.Result[domain.Movie])

	go func() {
		defer close(out)
		em := emitter[domain.Movie]{ctx: ctx, out: out}
		defer em.recoverUnexpected(s.logger)

		if !em.emit(domain.Loading[domain.Movie]{}) {
			return
		}

		movie, err := s.provider.GetMovieDetails(ctx, domain.DetailQuery{ID: id})
		if err != nil {
			s.logger.WarnContext(ctx, "movie details failed", slog.String("id", id), slog.Any("error", err))
			em.emit(domain.Failure[domain.Movie]{Message: domain.MessageOf(err), Err: err})
			return
		}
		if movie == nil {
			em.emit(domain.Failure[domain.Movie]{Message: domain.MsgMovieNotFound, Err: domain.ErrMovieNotFound})
			return
		}
		em.emit(domain.Success[domain.Movie]{Data: *movie})
	}()

	return out
}

// emitter pushes results to a stream unless the consumer's context is done.
type emitter[T any] struct {
	ctx    context.Context
	out    chan<- domain.Result[T]
	closed bool
}

func (e *emitter[T]) emit(r domain.Result[T]) bool {
	if e.closed {
		return false
	}
	select {
	case e.out <- r:
		return true
	case <-e.ctx.Done():
		e.closed = true
		return false
	}
}

// recoverUnexpected turns a panic into the generic terminal Failure.
func (e *emitter[T]) recoverUnexpected(logger *slog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logger.Error("unexpected failure in movie stream", slog.Any("panic", r))
	e.emit(domain.Failure[T]{
		Message: domain.MsgUnknownError,
		Err:     fmt.Errorf("%w: %v", errUnexpected, r),
	})
}
