// Package tmdb is a small read-only client for The Movie Database v3 API.
//
// Every request funnels through Client.Call, which attaches the API key and
// language, issues a single GET and decodes the body. There is no caching and
// no retry: any failure is reported immediately as ErrUpstream.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Flicks/config"
	"Flicks/metrics"
	sharedhttp "Flicks/shared/http"
)

// ErrUpstream is matched by every error caused by the TMDB API: transport
// failures, non-2xx responses and undecodable bodies.
var ErrUpstream = errors.New("tmdb upstream failure")

// UpstreamError describes a failed call. StatusCode is zero when no response
// was received.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewClient builds a client from the application config. A nil httpClient
// gets a dedicated one using cfg.TMDBTimeout.
func NewClient(cfg *config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.TMDBTimeout}
	}
	return &Client{
		baseURL:      withTrailingSlash(cfg.TMDBBaseURL),
		imageBaseURL: withTrailingSlash(cfg.TMDBImageBaseURL),
		apiKey:       cfg.TMDBAPIKey,
		language:     cfg.TMDBLanguage,
		httpClient:   httpClient,
		logger:       slog.Default().With("component", "tmdb"),
	}
}

// Call issues q and decodes the JSON body into v.
func (c *Client) Call(ctx context.Context, q Query, v any) (err error) {
	endpoint := q.Endpoint()
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		metrics.RecordUpstreamRequest(q.Route(), elapsed, err)
		c.logger.Debug("TMDB request", "endpoint", endpoint, "duration", elapsed, "error", err)
	}()

	params := url.Values{
		"api_key":  {c.apiKey},
		"language": {c.language},
	}
	for k, vs := range q.Params() {
		params[k] = vs
	}

	reqURL, err := sharedhttp.BuildQueryURL(c.baseURL+endpoint, params)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}

	resp, err := sharedhttp.MakeRequest(ctx, reqURL, c.httpClient)
	if err != nil {
		return c.upstreamError(endpoint, err)
	}

	if err := sharedhttp.DecodeJSONResponse(resp, v); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// CallRaw returns the decoded body verbatim.
func (c *Client) CallRaw(ctx context.Context, q Query) (map[string]any, error) {
	var body map[string]any
	if err := c.Call(ctx, q, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) upstreamError(endpoint string, err error) error {
	ue := &UpstreamError{Endpoint: endpoint, Err: err}

	var statusErr *sharedhttp.StatusError
	if errors.As(err, &statusErr) {
		ue.StatusCode = statusErr.StatusCode
	}

	// url.Error embeds the full request URL, api_key included.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.baseURL + endpoint
	}
	return ue
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
