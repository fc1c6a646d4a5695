package omdb

import (
	"math"
	"strconv"
	"strings"

	"github.com/jpp0ca/MovieCatalog-API/internal/domain"
)

// notAvailable is the marker OMDb uses for missing values.
const notAvailable = "N/A"

const (
	defaultRating     = 0.0
	defaultVotes      = 0
	defaultPopularity = 0.0
	popularityFactor  = 10
)

// MapSearchRecord converts a search entry into a Movie. Search entries have no
// synopsis or rating, so the overview embeds the year and scores are zero.
func MapSearchRecord(r SearchRecord) (domain.Movie, error) {
	if strings.TrimSpace(r.IMDbID) == "" {
		return domain.Movie{}, &domain.MappingError{Field: "imdbID", Reason: "is empty"}
	}
	return domain.Movie{
		ID:          r.IMDbID,
		Title:       r.Title,
		Overview:    "Year: " + r.Year,
		PosterURL:   posterURL(r.Poster),
		BackdropURL: posterURL(r.Poster),
		ReleaseDate: r.Year,
		VoteAverage: defaultRating,
		VoteCount:   defaultVotes,
		Popularity:  defaultPopularity,
	}, nil
}

// MapDetailRecord converts a detail record into a Movie. Unparseable numeric
// fields degrade to zero; popularity is derived from the rating.
func MapDetailRecord(r DetailRecord) (domain.Movie, error) {
	if strings.TrimSpace(r.IMDbID) == "" {
		return domain.Movie{}, &domain.MappingError{Field: "imdbID", Reason: "is empty"}
	}
	rating := parseFloatOr(r.IMDbRating, defaultRating)
	votes := parseIntOr(strings.ReplaceAll(r.IMDbVotes, ",", ""), defaultVotes)

	return domain.Movie{
		ID:          r.IMDbID,
		Title:       r.Title,
		Overview:    r.Plot,
		PosterURL:   posterURL(r.Poster),
		BackdropURL: posterURL(r.Poster),
		ReleaseDate: r.Released,
		VoteAverage: rating,
		VoteCount:   votes,
		Popularity:  rating * popularityFactor,
	}, nil
}

// posterURL returns nil for the not-available marker. Each call allocates so
// PosterURL and BackdropURL never alias.
func posterURL(poster string) *string {
	if poster == notAvailable {
		return nil
	}
	p := poster
	return &p
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
