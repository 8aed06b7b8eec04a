// Package serpapi provides a client for the SerpAPI Google showtimes
// search endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vmunix/marquee/internal/showtimes"
)

const defaultBaseURL = "https://serpapi.com"
const defaultUserAgent = "marquee/1.0"

// Client is a SerpAPI search client scoped to showtimes queries.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	language   string
	country    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLocale sets the hl/gl search locale parameters.
func WithLocale(language, country string) Option {
	return func(c *Client) {
		c.language = language
		c.country = country
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new SerpAPI client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		language:  "en",
		country:   "us",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Showtimes fetches today's movie listing for one theater. It returns the
// normalized movies plus the matched theater's street address. An empty
// movie list with a nil error means the search simply found no showtimes.
func (c *Client) Showtimes(ctx context.Context, theater, location string) ([]showtimes.Movie, string, error) {
	q := url.Values{}
	q.Set("q", theater)
	q.Set("location", location)
	q.Set("hl", c.language)
	q.Set("gl", c.country)
	q.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s/search.json?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("serpapi: %s", resp.Status)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, "", fmt.Errorf("decode response: %w", err)
	}
	if p.Error != "" {
		return nil, "", fmt.Errorf("serpapi: %s", p.Error)
	}

	movies, address := normalize(theater, &p)
	return movies, address, nil
}
