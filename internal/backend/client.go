// Package backend implements domain.DocumentService over the document
// search HTTP contract.
package backend

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

	"docsearch/internal/domain"
)

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrTransport covers unreachable backends and non-2xx responses.
	ErrTransport = errors.New("backend transport failure")
	// ErrMalformedResponse covers bodies without the expected shape.
	ErrMalformedResponse = errors.New("malformed backend response")
)

var _ domain.DocumentService = (*Client)(nil)

// Client talks to the search backend at a fixed base URL.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

type contentResponse struct {
	Content *string `json:"content"`
}

// Search runs GET /search?query=term. Missing or null results yield an
// empty slice.
func (c *Client) Search(ctx context.Context, term string) ([]domain.SearchResult, error) {
	u := c.endpoint("search")
	u.RawQuery = url.Values{"query": {term}}.Encode()

	var body searchResponse
	if err := c.get(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Results == nil {
		return []domain.SearchResult{}, nil
	}
	return body.Results, nil
}

// Content runs GET /document/<id>. Missing content yields "".
func (c *Client) Content(ctx context.Context, id string) (string, error) {
	u := c.endpoint("document", id)

	var body contentResponse
	if err := c.get(ctx, u, &body); err != nil {
		return "", err
	}
	if body.Content == nil {
		return "", nil
	}
	return *body.Content, nil
}

func (c *Client) endpoint(segments ...string) *url.URL {
	u := *c.baseURL
	raw := u.EscapedPath()
	plain := u.Path
	for _, s := range segments {
		raw += "/" + url.PathEscape(s)
		plain += "/" + s
	}
	u.Path = plain
	u.RawPath = raw
	return &u
}

func (c *Client) get(ctx context.Context, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: HTTP %d for %s", ErrTransport, resp.StatusCode, u.Path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
