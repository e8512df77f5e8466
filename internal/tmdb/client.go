// Package tmdb is a small client for the parts of The Movie Database API v3
// the bot needs: multi search and the movie, TV and person detail endpoints.
package tmdb

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
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/edgard/tmdbot/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"

	imageBaseURL   = "http://image.tmdb.org/t/p/"
	maxBodyBytes   = 2 << 20
	maxErrorBytes  = 4 << 10
	defaultTimeout = 10 * time.Second
)

// ImageURL builds an image URL for a TMDB file path at the given size
// ("w92", "original", ...). An empty path yields an empty URL.
func ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}

// Config configures a Client.
type Config struct {
	Token    string // v4 read access token, sent as a bearer credential
	BaseURL  string
	Language string
	Timeout  time.Duration
	Client   *http.Client
	Logger   *slog.Logger
}

// Client talks to the TMDB API. It is safe for concurrent use.
type Client struct {
	token    string
	baseURL  string
	language string
	http     *http.Client
	log      *slog.Logger
}

// NewClient validates cfg and returns a ready client. When cfg.Client is nil an
// otelhttp-instrumented client with cfg.Timeout is used.
func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("tmdb API token is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid tmdb base url %q: %w", baseURL, err)
	}

	httpClient := cfg.Client
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		token:    token,
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: strings.TrimSpace(cfg.Language),
		http:     httpClient,
		log:      logger.With("component", "tmdb_client"),
	}, nil
}

// SearchMulti searches movies, TV shows and people at once. Results keep
// TMDB's ranking.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]SearchResult, error) {
	var resp multiSearchResponse
	params := url.Values{"query": {query}}
	if err := c.get(ctx, "search_multi", "/search/multi", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	c.log.DebugContext(ctx, "Multi search completed", "query", query, "results", len(resp.Results), "total", resp.TotalResults)
	return resp.Results, nil
}

// Movie fetches movie details with credits appended.
func (c *Client) Movie(ctx context.Context, id int) (*Movie, error) {
	var m Movie
	params := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, "movie", "/movie/"+strconv.Itoa(id), params, &m); err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, err)
	}
	return &m, nil
}

// TV fetches TV show details.
func (c *Client) TV(ctx context.Context, id int) (*TV, error) {
	var tv TV
	if err := c.get(ctx, "tv", "/tv/"+strconv.Itoa(id), nil, &tv); err != nil {
		return nil, fmt.Errorf("tv %d: %w", id, err)
	}
	return &tv, nil
}

// Person fetches person details.
func (c *Client) Person(ctx context.Context, id int) (*Person, error) {
	var p Person
	if err := c.get(ctx, "person", "/person/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, fmt.Errorf("person %d: %w", id, err)
	}
	return &p, nil
}

// Ping checks the token and connectivity against /configuration.
func (c *Client) Ping(ctx context.Context) error {
	var discard json.RawMessage
	if err := c.get(ctx, "configuration", "/configuration", nil, &discard); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.TMDBRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TMDBRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.TMDBRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		if len(body) > 0 {
			_ = json.Unmarshal(body, apiErr)
		}
		c.log.WarnContext(ctx, "TMDB request failed", "endpoint", endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
