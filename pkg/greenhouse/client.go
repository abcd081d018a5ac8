package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://boards-api.greenhouse.io"

// Config defines Greenhouse board API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads public Greenhouse job boards. One board token corresponds to
// one company's board.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type boardResponse struct {
	Jobs []Posting `json:"jobs"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

// Posting mirrors one Greenhouse board entry
type Posting struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	UpdatedAt   string `json:"updated_at"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
	Metadata []struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"metadata"`
}

// NewClient instantiates a Greenhouse board client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListJobs fetches every open posting on one board
func (c *Client) ListJobs(ctx context.Context, boardToken string) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("greenhouse: client is nil")
	}
	if boardToken == "" {
		return nil, fmt.Errorf("greenhouse: board token is required")
	}

	endpoint := fmt.Sprintf("%s/v1/boards/%s/jobs", c.baseURL, url.PathEscape(boardToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("greenhouse: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("greenhouse: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("greenhouse: board %q error (%d): %s", boardToken, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload boardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("greenhouse: decode response: %w", err)
	}

	return payload.Jobs, nil
}
