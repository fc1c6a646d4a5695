package domain

// Movie is the normalized movie shape shared by every consumer. Values are
// built by provider mappers and never modified afterwards.
type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterURL   *string `json:"poster_url,omitempty"`
	BackdropURL *string `json:"backdrop_url,omitempty"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
}

// HasPoster reports whether the provider supplied a poster image.
func (m Movie) HasPoster() bool {
	return m.PosterURL != nil
}

// Provider query defaults.
const (
	DefaultKeyword    = "popular"
	DefaultSearchType = "movie"
	DefaultPage       = 1
	DefaultPlot       = "full"
)

// SearchQuery describes a single keyword search against a movie provider.
type SearchQuery struct {
	Keyword string `json:"keyword"`
	Type    string `json:"type"`
	Page    int    `json:"page"`
}

// WithDefaults fills unset fields with the provider defaults.
func (q SearchQuery) WithDefaults() SearchQuery {
	if q.Keyword == "" {
		q.Keyword = DefaultKeyword
	}
	if q.Type == "" {
		q.Type = DefaultSearchType
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	return q
}

// DetailQuery describes a lookup of one movie by its external identifier.
type DetailQuery struct {
	ID   string `json:"id"`
	Plot string `json:"plot"`
}

// WithDefaults fills unset fields with the provider defaults.
func (q DetailQuery) WithDefaults() DetailQuery {
	if q.Plot == "" {
		q.Plot = DefaultPlot
	}
	return q
}
