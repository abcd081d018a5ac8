package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://remotive.com"

// Config defines Remotive API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the Remotive public remote-jobs API. The API has no
// server-side pagination; one call returns the full current listing.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type listResponse struct {
	JobCount int       `json:"job-count"`
	Jobs     []Posting `json:"jobs"`
}

// Posting mirrors one Remotive listing as the API returns it
type Posting struct {
	ID                        int64    `json:"id"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	URL                       string   `json:"url"`
	Category                  string   `json:"category"`
	JobType                   string   `json:"job_type"`
	PublicationDate           string   `json:"publication_date"`
	Salary                    string   `json:"salary"`
	Description               string   `json:"description"`
	Tags                      []string `json:"tags"`
}

// NewClient instantiates a Remotive API client
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

// ListJobs fetches the full remote-jobs listing. The optional search term is
// forwarded upstream but callers should still filter client-side: Remotive's
// search matches loosely.
func (c *Client) ListJobs(ctx context.Context, search string) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("remotive: client is nil")
	}

	endpoint := c.baseURL + "/api/remote-jobs"
	if search != "" {
		endpoint += "?search=" + url.QueryEscape(search)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("remotive: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("remotive: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("remotive: decode response: %w", err)
	}

	return payload.Jobs, nil
}
