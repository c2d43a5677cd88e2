// Package gcse provides a client for the Google Custom Search JSON API.
package gcse

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

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Client performs Custom Search API operations.
type Client interface {
	// Search issues a single search request. num is the page size (the API
	// caps it at 10); start is the 1-based index of the first result.
	Search(ctx context.Context, query string, num, start int) (*SearchResponse, error)
}

// SearchResponse is the subset of the API response the collector uses.
type SearchResponse struct {
	Items   []Item  `json:"items"`
	Queries Queries `json:"queries"`
}

// Queries carries the API's pagination metadata; a non-empty NextPage means
// more results exist.
type Queries struct {
	NextPage []PageInfo `json:"nextPage"`
}

// PageInfo describes one page of the result window.
type PageInfo struct {
	StartIndex int `json:"startIndex"`
}

// Item is one search hit.
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// StatusError is returned for non-200 API responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return "gcse: unexpected status " + strconv.Itoa(e.Code) + ": " + e.Body
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
	cx      string
	baseURL string
	http    *http.Client
}

// NewClient creates a Custom Search client for the given API key and engine ID.
func NewClient(apiKey, cx string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		cx:      cx,
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

func (c *httpClient) Search(ctx context.Context, query string, num, start int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("cx", c.cx)
	params.Set("num", strconv.Itoa(num))
	params.Set("start", strconv.Itoa(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "gcse: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "gcse: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "gcse: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "gcse: unmarshal response")
	}

	return &result, nil
}
