package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
	"github.com/jpp0ca/MovieCatalog-API/internal/ports"
)

type stubService struct {
	list   []domain.Result[[]domain.Movie]
	detail []domain.Result[domain.Movie]

	gotTerms []string
	gotLimit int
	gotID    string
}

func streamOf[T any](results []domain.Result[T]) <-chan domain.Result[T] {
	ch := make(chan domain.Result[T], len(results))
	for _, r := range results {
		ch <- r
	}
	close(ch)
	return ch
}

func (s *stubService) FetchPopularMovies(_ context.Context, terms []string, limit int) <-chan domain.Result[[]domain.Movie] {
	s.gotTerms, s.gotLimit = terms, limit
	return streamOf(s.list)
}

func (s *stubService) FetchMovieDetails(_ context.Context, id string) <-chan domain.Result[domain.Movie] {
	s.gotID = id
	return streamOf(s.detail)
}

func (s *stubService) DefaultTerms() []string { return []string{"action", "star"} }
func (s *stubService) DefaultLimit() int      { return 20 }

func runCLI(t *testing.T, svc ports.MovieService, args ...string) (string, string, error) {
	t.Helper()
	ctx := newCommandContext(func(io.Writer) (ports.MovieService, error) { return svc, nil })
	cmd := newRootCommand(ctx)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func posterOf(url string) *string { return &url }

func TestPopularCommand_RendersTableAndWarnings(t *testing.T) {
	svc := &stubService{list: []domain.Result[[]domain.Movie]{
		domain.Loading[[]domain.Movie]{},
		domain.Failure[[]domain.Movie]{Message: "timeout"},
		domain.Success[[]domain.Movie]{Data: []domain.Movie{
			{ID: "tt0372784", Title: "Batman Begins", ReleaseDate: "2005", PosterURL: posterOf("http://x/b.jpg")},
			{ID: "tt0096895", Title: "Batman", ReleaseDate: "1989"},
		}},
	}}

	stdout, stderr, err := runCLI(t, svc, "popular")

	require.NoError(t, err)
	assert.Equal(t, []string{"action", "star"}, svc.gotTerms)
	assert.Equal(t, 20, svc.gotLimit)
	assert.Contains(t, stdout, "Batman Begins")
	assert.Contains(t, stdout, "tt0096895")
	assert.Contains(t, stderr, "Loading...")
	assert.Contains(t, stderr, "warning: timeout")
}

func TestPopularCommand_Flags(t *testing.T) {
	svc := &stubService{list: []domain.Result[[]domain.Movie]{
		domain.Loading[[]domain.Movie]{},
		domain.Success[[]domain.Movie]{Data: []domain.Movie{{ID: "tt1", Title: "One"}}},
	}}

	_, _, err := runCLI(t, svc, "popular", "--terms", "matrix, dune", "--limit", "3")

	require.NoError(t, err)
	assert.Equal(t, []string{"matrix", "dune"}, svc.gotTerms)
	assert.Equal(t, 3, svc.gotLimit)
}

func TestPopularCommand_InvalidLimit(t *testing.T) {
	_, _, err := runCLI(t, &stubService{}, "popular", "--limit", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--limit")
}

func TestPopularCommand_TerminalFailure(t *testing.T) {
	svc := &stubService{list: []domain.Result[[]domain.Movie]{
		domain.Loading[[]domain.Movie]{},
		domain.Failure[[]domain.Movie]{Message: "connection refused"},
		domain.Failure[[]domain.Movie]{Message: domain.MsgNoMoviesFound, Err: domain.ErrNoMoviesFound},
	}}

	stdout, stderr, err := runCLI(t, svc, "popular")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoMoviesFound))
	assert.Equal(t, "no movies found", err.Error())
	assert.Contains(t, stderr, "warning: connection refused")
	assert.Empty(t, stdout)
}

func TestShowCommand_RendersDetail(t *testing.T) {
	svc := &stubService{detail: []domain.Result[domain.Movie]{
		domain.Loading[domain.Movie]{},
		domain.Success[domain.Movie]{Data: domain.Movie{
			ID: "tt0111161", Title: "The Shawshank Redemption", ReleaseDate: "14 Oct 1994",
			VoteAverage: 9.3, VoteCount: 2500000, Popularity: 93, Overview: "Hope.",
		}},
	}}

	stdout, _, err := runCLI(t, svc, "show", "tt0111161")

	require.NoError(t, err)
	assert.Equal(t, "tt0111161", svc.gotID)
	assert.Contains(t, stdout, "The Shawshank Redemption")
	assert.Contains(t, stdout, "9.3")
	assert.Contains(t, stdout, "2500000")
	assert.Contains(t, stdout, "93.0")
}

func TestShowCommand_Failure(t *testing.T) {
	svc := &stubService{detail: []domain.Result[domain.Movie]{
		domain.Loading[domain.Movie]{},
		domain.Failure[domain.Movie]{Message: "movie not found", Err: domain.ErrMovieNotFound},
	}}

	_, stderr, err := runCLI(t, svc, "show", "tt-unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMovieNotFound))
	assert.NotContains(t, stderr, "warning:")
}

func TestShowCommand_RequiresID(t *testing.T) {
	_, _, err := runCLI(t, &stubService{}, "show")
	require.Error(t, err)
}

func TestConsume_IncompleteStream(t *testing.T) {
	svc := &stubService{detail: []domain.Result[domain.Movie]{domain.Loading[domain.Movie]{}}}

	_, _, err := runCLI(t, svc, "show", "tt1")

	require.ErrorIs(t, err, errStreamIncomplete)
}
