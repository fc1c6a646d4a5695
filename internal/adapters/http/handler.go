package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
	"github.com/jpp0ca/MovieCatalog-API/internal/ports"
)

// Handler holds the HTTP handlers for the movie API.
type Handler struct {
	service ports.MovieService
}

// NewHandler creates a new HTTP handler with the given movie service.
func NewHandler(service ports.MovieService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/movies", h.ListPopularMovies)
		api.GET("/movies/:id", h.GetMovieDetails)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ListPopularMovies aggregates the configured (or requested) search terms into
// a deduplicated movie list.
//
//	@Summary		List popular movies
//	@Description	Searches every term in order, merges results by IMDb ID (first occurrence wins) and truncates to limit.
//	@Description	Per-term failures are reported as warnings. Pass stream=true or Accept: text/event-stream to receive
//	@Description	every loading/success/error emission as a Server-Sent Event.
//	@Tags			movies
//	@Produce		json
//	@Produce		text/event-stream
//	@Param			terms	query		string	false	"Comma-separated search terms (defaults to the configured list)"
//	@Param			limit	query		int		false	"Maximum number of movies"	minimum(1)
//	@Param			stream	query		bool	false	"Stream every emission as SSE"
//	@Success		200		{object}	MovieListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/v1/movies [get]
func (h *Handler) ListPopularMovies(c *gin.Context) {
	terms := splitTerms(c.Query("terms"))
	if len(terms) == 0 {
		terms = h.service.DefaultTerms()
	}

	limit := h.service.DefaultLimit()
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "bad_request",
				Message: "query parameter 'limit' must be a positive integer",
			})
			return
		}
		limit = n
	}

	stream := h.service.FetchPopularMovies(c.Request.Context(), terms, limit)
	if wantsStream(c) {
		streamEvents(c, stream)
		return
	}

	results := domain.Drain(stream)
	var warnings []string
	for i, r := range results {
		if f, ok := r.(domain.Failure[[]domain.Movie]); ok && i < len(results)-1 {
			warnings = append(warnings, f.Message)
		}
	}

	switch final := terminal(results).(type) {
	case domain.Success[[]domain.Movie]:
		c.JSON(http.StatusOK, MovieListResponse{
			Movies:   final.Data,
			Count:    len(final.Data),
			Warnings: warnings,
		})
	case domain.Failure[[]domain.Movie]:
		status, code := http.StatusBadGateway, "provider_error"
		if errors.Is(final, domain.ErrNoMoviesFound) {
			status, code = http.StatusNotFound, "not_found"
		}
		c.JSON(status, ErrorResponse{Error: code, Message: final.Message, Details: warnings})
	default:
		abortIncomplete(c)
	}
}

// GetMovieDetails returns the full record of one movie.
//
//	@Summary		Get movie details
//	@Description	Looks up a single movie by IMDb ID (full plot). Pass stream=true or Accept: text/event-stream
//	@Description	to receive the loading and terminal emissions as Server-Sent Events.
//	@Tags			movies
//	@Produce		json
//	@Produce		text/event-stream
//	@Param			id		path		string	true	"IMDb ID"	example(tt0111161)
//	@Param			stream	query		bool	false	"Stream every emission as SSE"
//	@Success		200		{object}	domain.Movie
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/v1/movies/{id} [get]
func (h *Handler) GetMovieDetails(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	stream := h.service.FetchMovieDetails(c.Request.Context(), id)
	if wantsStream(c) {
		streamEvents(c, stream)
		return
	}

	switch final := terminal(domain.Drain(stream)).(type) {
	case domain.Success[domain.Movie]:
		c.JSON(http.StatusOK, final.Data)
	case domain.Failure[domain.Movie]:
		var mappingErr *domain.MappingError
		switch {
		case errors.Is(final, domain.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: final.Message})
		case errors.As(final, &mappingErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: final.Message})
		default:
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "provider_error", Message: final.Message})
		}
	default:
		abortIncomplete(c)
	}
}

// MovieListResponse is returned by the popular movies endpoint. Warnings hold
// the messages of search terms that failed before the list was assembled.
type MovieListResponse struct {
	Movies   []domain.Movie `json:"movies"`
	Count    int            `json:"count"`
	Warnings []string       `json:"warnings,omitempty"`
}

// ResultEnvelope is the payload of every Server-Sent Event.
type ResultEnvelope struct {
	Status  domain.Status `json:"status"`
	Data    any           `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// -- Helpers -----------------------------------------------------------------

// envelope converts a stream emission into its wire form.
func envelope[T any](r domain.Result[T]) ResultEnvelope {
	switch v := r.(type) {
	case domain.Success[T]:
		return ResultEnvelope{Status: v.Status(), Data: v.Data}
	case domain.Failure[T]:
		env := ResultEnvelope{Status: v.Status(), Message: v.Message}
		if v.Data != nil {
			env.Data = *v.Data
		}
		return env
	default:
		return ResultEnvelope{Status: r.Status()}
	}
}

// streamEvents writes each emission as an SSE event named after its status.
// The stream stops early when the client goes away.
func streamEvents[T any](c *gin.Context, stream <-chan domain.Result[T]) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		r, ok := <-stream
		if !ok {
			return false
		}
		c.SSEvent(string(r.Status()), envelope[T](r))
		return true
	})
}

// terminal returns the last emission if it ends the stream, nil otherwise.
func terminal[T any](results []domain.Result[T]) domain.Result[T] {
	if len(results) == 0 {
		return nil
	}
	last := results[len(results)-1]
	if last.Status() == domain.StatusLoading {
		return nil
	}
	return last
}

func abortIncomplete(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   "incomplete",
		Message: domain.MsgUnknownError,
	})
}

func wantsStream(c *gin.Context) bool {
	if raw := c.Query("stream"); raw != "" {
		v, err := strconv.ParseBool(raw)
		return err == nil && v
	}
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

func splitTerms(raw string) []string {
	var terms []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
