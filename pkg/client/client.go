// Package client is a small HTTP client for the chunksearch API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// SearchParams mirrors the /v1/search request body. Zero-valued optional
// fields are omitted and resolved server-side from configured defaults.
type SearchParams struct {
	ScopeID         string   `json:"scope_id"`
	Query           string   `json:"query"`
	Strategy        string   `json:"strategy,omitempty"`
	ResultLimit     int      `json:"result_limit,omitempty"`
	CandidateLimit  int      `json:"candidate_limit,omitempty"`
	Alpha           *float64 `json:"alpha,omitempty"`
	Rerank          bool     `json:"rerank,omitempty"`
	Diversify       bool     `json:"diversify,omitempty"`
	DiversifyLambda *float64 `json:"diversify_lambda,omitempty"`
	SectionFilter   []string `json:"section_filter,omitempty"`
}

// Hit is a single passage returned by the API.
type Hit struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	SectionTitle string  `json:"section_title,omitempty"`
	PageNumber   int     `json:"page_number,omitempty"`
	Score        float64 `json:"score"`
}

// SearchResponse is the /v1/search response body.
type SearchResponse struct {
	Hits  []Hit `json:"hits"`
	Total int   `json:"total"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chunksearch: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Client talks to a chunksearch server.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the Bearer token sent on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a retrieval query.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchResponse, error) {
	var resp SearchResponse
	if err := c.post(ctx, "/v1/search", params, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// Health checks server and store connectivity.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("chunksearch: build request: %w", err)
	}
	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("chunksearch: health request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return &APIError{StatusCode: res.StatusCode, Code: "unhealthy", Message: "server reported unhealthy"}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("chunksearch: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("chunksearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("chunksearch: request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Code == "" {
			apiErr.Code = "unknown"
			apiErr.Message = string(data)
		}
		return apiErr
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("chunksearch: decode response: %w", err)
	}
	return nil
}
