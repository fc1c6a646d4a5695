package omdb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Helpers -----------------------------------------------------------------

func newTestProvider(t *testing.T, handler http.HandlerFunc, opts ...Option) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewProvider("key", server.URL, opts...)
	require.NoError(t, err)
	return p
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// -- Tests -------------------------------------------------------------------

func TestNewProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewProvider("  ", "")
	require.Error(t, err)
}

func TestNewProvider_DefaultBaseURL(t *testing.T) {
	p, err := NewProvider("key", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, p.baseURL)
	assert.Equal(t, "omdb", p.Name())
}

func TestSearchMovies_Success(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("apikey"))
		assert.Equal(t, "batman", q.Get("s"))
		assert.Equal(t, "movie", q.Get("type"))
		assert.Equal(t, "1", q.Get("page"))
		writeJSON(w, `{"Search":[
			{"imdbID":"tt0372784","Title":"Batman Begins","Year":"2005","Type":"movie","Poster":"http://x/b.jpg"},
			{"imdbID":"tt0096895","Title":"Batman","Year":"1989","Type":"movie","Poster":"N/A"}
		],"totalResults":"2","Response":"True"}`)
	})

	movies, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "batman"})
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "tt0372784", movies[0].ID)
	assert.Equal(t, "Year: 2005", movies[0].Overview)
	assert.Nil(t, movies[1].PosterURL)
}

func TestSearchMovies_DefaultKeyword(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "popular", r.URL.Query().Get("s"))
		writeJSON(w, `{"Search":[],"Response":"True"}`)
	})

	movies, err := p.SearchMovies(context.Background(), domain.SearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestSearchMovies_NotFoundIsEmpty(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Response":"False","Error":"Movie not found!"}`)
	})

	movies, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "zzzz"})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestSearchMovies_ProviderFailure(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Response":"False","Error":"Too many results."}`)
	})

	_, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, err.Error(), "Too many results.")
	assert.False(t, errors.Is(err, domain.ErrMovieNotFound))
}

func TestSearchMovies_HTTPError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, `{"Response":"False","Error":"Invalid API key!"}`)
	})

	_, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "401")
}

func TestSearchMovies_HTTPErrorBodyTruncated(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	})

	_, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Less(t, len(err.Error()), 400)
}

func TestDoGet_ConnectionErrorHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	p, err := NewProvider("SECRETKEY123", baseURL)
	require.NoError(t, err)

	_, err = p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotContains(t, err.Error(), "SECRETKEY123")
	assert.NotContains(t, domain.MessageOf(err), "apikey")

	_, err = p.GetMovieDetails(context.Background(), domain.DetailQuery{ID: "tt1"})
	require.ErrorAs(t, err, &transportErr)
	assert.NotContains(t, err.Error(), "SECRETKEY123")
}

func TestSearchMovies_MalformedBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{not json`)
	})

	_, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSearchMovies_SkipsRecordsWithoutID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Search":[
			{"imdbID":"","Title":"Broken","Year":"2001","Poster":"N/A"},
			{"imdbID":"tt2","Title":"Fine","Year":"2002","Poster":"N/A"}
		],"Response":"True"}`)
	}, WithLogger(logger))

	movies, err := p.SearchMovies(context.Background(), domain.SearchQuery{Keyword: "a"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "tt2", movies[0].ID)
	assert.Contains(t, logs.String(), "skipping search record")
}

func TestGetMovieDetails_Success(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "tt0111161", q.Get("i"))
		assert.Equal(t, "full", q.Get("plot"))
		writeJSON(w, `{"imdbID":"tt0111161","Title":"The Shawshank Redemption","Year":"1994",
			"Released":"14 Oct 1994","Plot":"Hope.","Poster":"N/A",
			"imdbRating":"9.3","imdbVotes":"2,500,000","Response":"True"}`)
	})

	movie, err := p.GetMovieDetails(context.Background(), domain.DetailQuery{ID: "tt0111161"})
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", movie.Title)
	assert.Equal(t, 2500000, movie.VoteCount)
	assert.InDelta(t, 93.0, movie.Popularity, 1e-9)
}

func TestGetMovieDetails_NotFound(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Response":"False","Error":"Incorrect IMDb ID."}`)
	})

	_, err := p.GetMovieDetails(context.Background(), domain.DetailQuery{ID: "tt-unknown"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMovieNotFound))
}

func TestGetMovieDetails_EmptyID(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty id")
	})

	_, err := p.GetMovieDetails(context.Background(), domain.DetailQuery{ID: ""})
	var mappingErr *domain.MappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestGetMovieDetails_ContextCancelled(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"imdbID":"tt1","Response":"True"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetMovieDetails(ctx, domain.DetailQuery{ID: "tt1"})
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.Canceled))
}
