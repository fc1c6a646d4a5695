package adapters

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// Timeouts bounds outbound requests to movie providers. net/http has no
// separate deadline for sending a request, so Write only contributes to the
// overall client timeout, which is Connect + Write + Read.
type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
	Write   time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Connect <= 0 {
		t.Connect = defaultTimeout
	}
	if t.Read <= 0 {
		t.Read = defaultTimeout
	}
	if t.Write <= 0 {
		t.Write = defaultTimeout
	}
	return t
}

// NewHTTPClient builds the client shared by provider adapters. Connect bounds
// dialing and the TLS handshake, Read bounds waiting for response headers, and
// the overall client timeout covers the whole exchange.
func NewHTTPClient(timeouts Timeouts, logger *slog.Logger) *http.Client {
	timeouts = timeouts.withDefaults()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeouts.Connect,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   timeouts.Connect,
		ResponseHeaderTimeout: timeouts.Read,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
	}

	return &http.Client{
		Transport: &loggingTransport{base: base, logger: logger},
		Timeout:   timeouts.Connect + timeouts.Write + timeouts.Read,
	}
}

// loggingTransport records every outbound exchange at debug level.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	latency := time.Since(start)

	attrs := []any{
		slog.String("method", req.Method),
		slog.String("url", redactURL(req.URL)),
		slog.Duration("latency", latency),
	}
	if err != nil {
		t.logger.DebugContext(req.Context(), "provider request failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	t.logger.DebugContext(req.Context(), "provider request", append(attrs, slog.Int("status", resp.StatusCode))...)
	return resp, nil
}

var secretParams = []string{"apikey", "api_key"}

// redactURL masks credentials carried in the query string.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	changed := false
	for _, key := range secretParams {
		if q.Has(key) {
			q.Set(key, "REDACTED")
			changed = true
		}
	}
	if changed {
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}
