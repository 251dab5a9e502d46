package foxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FloofFetcher defines the interface for fetching fox payloads and images.
// This interface is implemented by *Client and can be used for testing.
type FloofFetcher interface {
	FetchFloof(ctx context.Context) (*FloofResponse, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Ensure Client implements FloofFetcher at compile time.
var _ FloofFetcher = (*Client)(nil)

// Client talks to the floof HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultEndpoint       = "https://randomfox.ca/floof/"
	defaultUserAgent      = "foxtrot/0.1"
	defaultRequestTimeout = 10 * time.Second

	// maxImageBytes caps preview downloads so a mislabeled URL cannot
	// balloon memory.
	maxImageBytes = 20 << 20
)

// NewClient builds a Client for the given endpoint URL. An empty endpoint
// selects the public randomfox.ca API. A zero timeout selects the default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchFloof retrieves a random fox photo URL from the API.
func (c *Client) FetchFloof(ctx context.Context) (*FloofResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("floof api returned status %d", resp.StatusCode)
	}

	var payload FloofResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(payload.Image) == "" {
		return nil, fmt.Errorf("response missing image url")
	}
	return &payload, nil
}

// FetchImage downloads the raw bytes of a fox photo for preview rendering.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("image url required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return body, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}
	return u, nil
}
