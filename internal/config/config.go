package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when a variable is unset or malformed.
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultProvider    = "omdb"
	DefaultOMDbBaseURL = "https://www.omdbapi.com"
	DefaultMaxMovies   = 20
	DefaultTimeout     = 30 * time.Second
)

// DefaultSearchTerms are the keywords aggregated into the popular list.
var DefaultSearchTerms = []string{"action", "avengers", "batman", "star", "love"}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port     string
	LogLevel string

	Provider    string
	OMDbAPIKey  string
	OMDbBaseURL string
	SearchTerms []string
	MaxMovies   int

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		Provider:       getEnv("MOVIE_PROVIDER", DefaultProvider),
		OMDbAPIKey:     strings.TrimSpace(getEnv("OMDB_API_KEY", "")),
		OMDbBaseURL:    getEnv("OMDB_BASE_URL", DefaultOMDbBaseURL),
		SearchTerms:    getList("SEARCH_TERMS", DefaultSearchTerms),
		MaxMovies:      getPositiveInt("MAX_MOVIES", DefaultMaxMovies),
		ConnectTimeout: getDuration("HTTP_CONNECT_TIMEOUT", DefaultTimeout),
		ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", DefaultTimeout),
		WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", DefaultTimeout),
	}
}

// Validate reports settings the provider adapters cannot start without.
func (c *Config) Validate() error {
	if c.OMDbAPIKey == "" {
		return errors.New("OMDB_API_KEY is not set")
	}
	if len(c.SearchTerms) == 0 {
		return errors.New("SEARCH_TERMS must name at least one term")
	}
	return nil
}

// SlogLevel converts LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseList splits a comma-separated value, dropping blanks.
func ParseList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	if items := ParseList(getEnv(key, "")); len(items) > 0 {
		return items
	}
	return append([]string(nil), fallback...)
}

func getPositiveInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(getEnv(key, "")))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(getEnv(key, "")))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
