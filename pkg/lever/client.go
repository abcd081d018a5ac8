package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://api.lever.co"

// Config defines Lever postings API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads public Lever postings for a company slug
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Posting mirrors one Lever posting. CreatedAt is epoch milliseconds.
type Posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	ApplyURL   string `json:"applyUrl"`
	CreatedAt  int64  `json:"createdAt"`
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
		Team       string `json:"team"`
	} `json:"categories"`
	WorkplaceType   string `json:"workplaceType"`
	DescriptionText string `json:"descriptionPlain"`
}

// NewClient instantiates a Lever postings client
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

// ListPostings fetches every published posting for one company slug
func (c *Client) ListPostings(ctx context.Context, companySlug string) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("lever: client is nil")
	}
	if companySlug == "" {
		return nil, fmt.Errorf("lever: company slug is required")
	}

	endpoint := fmt.Sprintf("%s/v0/postings/%s?mode=json", c.baseURL, url.PathEscape(companySlug))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("lever: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("lever: board %q error (%d): %s", companySlug, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload []Posting
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("lever: decode response: %w", err)
	}

	return payload, nil
}
