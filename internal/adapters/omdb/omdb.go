package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

const (
	// DefaultBaseURL is the public OMDb endpoint.
	DefaultBaseURL = "https://www.omdbapi.com"

	providerName = "omdb"

	// Provider messages that mean "nothing matched" rather than a failure.
	msgMovieNotFound   = "Movie not found!"
	msgIncorrectIMDbID = "Incorrect IMDb ID."

	maxBodyBytes  = 1 << 20
	maxErrorBytes = 256
)

// Provider implements ports.MovieProvider for the OMDb API.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithLogger sets the logger used for data-quality warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates an OMDb provider. An empty baseURL selects
// DefaultBaseURL.
func NewProvider(apiKey, baseURL string, opts ...Option) (*Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &Provider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(slog.String("component", providerName))
	return p, nil
}

func (p *Provider) Name() string {
	return providerName
}

// -- MovieProvider implementation --------------------------------------------

func (p *Provider) SearchMovies(ctx context.Context, query domain.SearchQuery) ([]domain.Movie, error) {
	query = query.WithDefaults()

	params := url.Values{}
	params.Set("s", query.Keyword)
	params.Set("type", query.Type)
	params.Set("page", strconv.Itoa(query.Page))

	var resp searchResponse
	if err := p.doGet(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	if !ok(resp.Response) {
		if resp.Error == msgMovieNotFound {
			return []domain.Movie{}, nil
		}
		return nil, &domain.ProviderError{Message: resp.Error}
	}

	movies := make([]domain.Movie, 0, len(resp.Search))
	for _, record := range resp.Search {
		movie, err := MapSearchRecord(record)
		if err != nil {
			p.logger.WarnContext(ctx, "skipping search record",
				slog.String("keyword", query.Keyword),
				slog.String("title", record.Title),
				slog.Any("error", err),
			)
			continue
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

func (p *Provider) GetMovieDetails(ctx context.Context, query domain.DetailQuery) (*domain.Movie, error) {
	query = query.WithDefaults()
	id := strings.TrimSpace(query.ID)
	if id == "" {
		return nil, &domain.MappingError{Field: "imdbID", Reason: "is empty"}
	}

	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", query.Plot)

	var record DetailRecord
	if err := p.doGet(ctx, "details", params, &record); err != nil {
		return nil, err
	}

	if !ok(record.Response) {
		return nil, &domain.ProviderError{
			Message:  record.Error,
			NotFound: record.Error == msgMovieNotFound || record.Error == msgIncorrectIMDbID,
		}
	}

	movie, err := MapDetailRecord(record)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// -- HTTP helpers ------------------------------------------------------------

func (p *Provider) doGet(ctx context.Context, op string, params url.Values, dest any) error {
	op = "omdb " + op
	params.Set("apikey", p.apiKey)
	endpoint := p.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.TransportError{Op: op, Err: stripURL(err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.TransportError{Op: op, Err: stripURL(err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &domain.TransportError{
			Op:  op,
			Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(body)), maxErrorBytes)),
		}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("parse response: %w", err)}
	}
	return nil
}

// stripURL drops the request URL from *url.Error values since it carries the
// API key.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
