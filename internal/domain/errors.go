package domain

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing fallback messages.
const (
	MsgUnknownError  = "an unknown error occurred"
	MsgNoMoviesFound = "no movies found"
	MsgMovieNotFound = "movie not found"
)

var (
	// ErrNoMoviesFound is reported when an aggregation yields zero movies.
	ErrNoMoviesFound = errors.New(MsgNoMoviesFound)

	// ErrMovieNotFound is reported when a detail lookup names an unknown id.
	ErrMovieNotFound = errors.New(MsgMovieNotFound)
)

// TransportError wraps a failed request to the movie provider: connection
// errors, timeouts, unexpected HTTP status codes and undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "transport error"
	}
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProviderError is returned when the provider answers successfully at the HTTP
// level but flags the request as failed in its body.
type ProviderError struct {
	Message  string
	NotFound bool
}

func (e *ProviderError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return "provider reported failure"
	}
	return "provider reported failure: " + msg
}

// Is lets errors.Is(err, ErrMovieNotFound) match unknown-id responses.
func (e *ProviderError) Is(target error) bool {
	return e.NotFound && target == ErrMovieNotFound
}

// MappingError reports a provider record missing a required field.
type MappingError struct {
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map movie record: field %s %s", e.Field, e.Reason)
}

// MessageOf returns the user-visible message for err, falling back to
// MsgUnknownError when err carries no text.
func MessageOf(err error) string {
	if err == nil {
		return MsgUnknownError
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return MsgUnknownError
}
