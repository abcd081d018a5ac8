package adzuna

import "net/http"

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	Country    string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams describe one search call
type SearchParams struct {
	Location string
	Page     int // 1-based; Adzuna encodes the page in the URL path
	PerPage  int
}

type searchResponse struct {
	Count   int       `json:"count"`
	Results []Posting `json:"results"`
	Pages   int       `json:"pages"`
}

// Posting mirrors a single Adzuna result as the API returns it
type Posting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string   `json:"display_name"`
		Area        []string `json:"area"`
	} `json:"location"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	ContractTime string  `json:"contract_time"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	Category     struct {
		Label string `json:"label"`
		Tag   string `json:"tag"`
	} `json:"category"`
}
