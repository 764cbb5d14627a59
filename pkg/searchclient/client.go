// Package searchclient provides a Go client for the search API plus a
// stateful query session with debouncing and response caching, for
// embedding in other services and tools.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// Result mirrors a search hit on the wire
type Result struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url"`
	Score       float64  `json:"score"`
	Highlights  []string `json:"highlights"`
}

// Suggestion mirrors an autocomplete entry on the wire
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Filters narrows a search by kind, category, location and date range
type Filters struct {
	Types      []string
	Categories []string
	Locations  []string
	From       string // RFC 3339
	To         string // RFC 3339
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client calls the search API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a cross-entity search and returns the ranked results
func (c *Client) Search(ctx context.Context, query string, limit int, f Filters) ([]Result, error) {
	values := url.Values{}
	values.Set("q", query)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if len(f.Types) > 0 {
		values.Set("type", strings.Join(f.Types, ","))
	}
	if len(f.Categories) > 0 {
		values.Set("category", strings.Join(f.Categories, ","))
	}
	if len(f.Locations) > 0 {
		values.Set("location", strings.Join(f.Locations, ","))
	}
	if f.From != "" {
		values.Set("from", f.From)
	}
	if f.To != "" {
		values.Set("to", f.To)
	}

	var results []Result
	if err := c.get(ctx, "/api/v1/search", values, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Suggest fetches autocomplete suggestions
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	values := url.Values{}
	values.Set("q", query)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var suggestions []Suggestion
	if err := c.get(ctx, "/api/v1/search/suggestions", values, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	target := c.baseURL + path + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return apperrors.Wrap(err, apperrors.ErrCodeAPITimeout, "search request timed out")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeExternalService, "search request failed")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeExternalService, "invalid response (status %d)", resp.StatusCode)
	}

	if !env.Success {
		message := env.Error
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		code := apperrors.ErrCodeExternalService
		switch resp.StatusCode {
		case http.StatusBadRequest:
			code = apperrors.ErrCodeInvalidInput
		case http.StatusTooManyRequests:
			code = apperrors.ErrCodeAPIRateLimit
		}
		return apperrors.New(code, message)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to decode response data")
	}
	return nil
}
