// Package brave provides a client for the Brave Web Search API.
package brave

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.search.brave.com/res/v1"

// Client performs Brave Search API operations.
type Client interface {
	// WebSearch issues a single web search request. offset is the absolute
	// result offset; count is the page size (the API caps it at 20).
	WebSearch(ctx context.Context, query string, count, offset int) (*WebSearchResponse, error)
}

// WebSearchResponse is the subset of the API response the collector uses.
type WebSearchResponse struct {
	Query QueryInfo  `json:"query"`
	Web   WebResults `json:"web"`
}

// QueryInfo carries the API's continuation signal.
type QueryInfo struct {
	MoreResultsAvailable bool `json:"more_results_available"`
}

// WebResults holds the web result list.
type WebResults struct {
	Results []Result `json:"results"`
}

// Result is one web search hit.
type Result struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// StatusError is returned for non-200 API responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return "brave: unexpected status " + strconv.Itoa(e.Code) + ": " + e.Body
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Brave Search API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) WebSearch(ctx context.Context, query string, count, offset int) (*WebSearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("source", "api")
	params.Set("count", strconv.Itoa(count))
	params.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/web/search?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "brave: create request")
	}
	// Accept-Encoding is left to the transport: setting it manually would
	// disable Go's transparent gzip decompression.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "brave: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "brave: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result WebSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "brave: unmarshal response")
	}

	return &result, nil
}
