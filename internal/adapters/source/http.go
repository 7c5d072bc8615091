package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	maxBodyBytes       = 64 << 20
)

// HTTPSource reads datasets from {base}/api/{name} and boundaries from
// {base}/static/geo/{name}.geojson.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// HTTPOption applies a configuration option to the HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client = &http.Client{Timeout: d, Transport: s.client.Transport}
		}
	}
}

// NewHTTPSource validates baseURL and builds the adapter.
func NewHTTPSource(baseURL string, opts ...HTTPOption) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse source base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("source base url %q: scheme must be http or https", baseURL)
	}
	s := &HTTPSource{
		base:   u,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FetchDataset implements Source.
func (s *HTTPSource) FetchDataset(ctx context.Context, name string) (json.RawMessage, error) {
	body, err := s.get(ctx, name, "api", name)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// FetchGeoBoundary implements Source.
func (s *HTTPSource) FetchGeoBoundary(ctx context.Context, name string) (GeoCollection, error) {
	body, err := s.get(ctx, name, "static", "geo", name+".geojson")
	if err != nil {
		return GeoCollection{}, err
	}
	var g GeoCollection
	if err := json.Unmarshal(body, &g); err != nil {
		return GeoCollection{}, &TransportError{Dataset: name, Err: fmt.Errorf("decode geojson: %w", err)}
	}
	return g, nil
}

func (s *HTTPSource) get(ctx context.Context, dataset string, segments ...string) ([]byte, error) {
	target := s.base.JoinPath(segments...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &TransportError{Dataset: dataset, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Dataset: dataset, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &TransportError{Dataset: dataset, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Dataset: dataset, Status: resp.StatusCode, Err: err}
	}
	return body, nil
}
