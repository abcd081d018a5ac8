package domain

import "time"

// MaxDescriptionLen bounds stored job descriptions to keep payloads small.
const MaxDescriptionLen = 2000

// Job is the canonical posting shape every source adapter maps into.
// (Source, ExternalID) is unique per adapter call but not globally: the same
// posting can arrive from two providers under different ids. Global uniqueness
// exists only after deduplication.
type Job struct {
	Source     string `json:"source"`
	ExternalID string `json:"external_id"`

	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`

	Country string `json:"country,omitempty"`
	Remote  *bool  `json:"remote,omitempty"`
	JobType string `json:"job_type,omitempty"`

	// PostedAt keeps the provider-native timestamp string untouched.
	PostedAt string `json:"posted_at,omitempty"`

	SalaryMin      float64 `json:"salary_min,omitempty"`
	SalaryMax      float64 `json:"salary_max,omitempty"`
	SalaryCurrency string  `json:"salary_currency,omitempty"`

	Description string   `json:"description,omitempty"`
	ApplyURL    string   `json:"apply_url"`
	Tags        []string `json:"tags,omitempty"`
}

// SearchFilters narrows a job search.
type SearchFilters struct {
	Country    string `json:"country,omitempty"`
	Location   string `json:"location,omitempty"`
	Company    string `json:"company,omitempty"`
	RemoteOnly bool   `json:"remote_only,omitempty"`
}

// SearchRequest is the full query signature handed to the pipeline.
type SearchRequest struct {
	Query       string        `json:"query"`
	Filters     SearchFilters `json:"filters,omitempty"`
	Page        int           `json:"page,omitempty"`
	Limit       int           `json:"limit,omitempty"`
	Sources     []string      `json:"sources,omitempty"` // empty means all enabled
	ProfileText string        `json:"profile_text,omitempty"`
}

// MatchedJob is a Job plus its profile-match score. Never persisted.
type MatchedJob struct {
	Job
	MatchScore      float64  `json:"match_score"`
	OverlapKeywords []string `json:"overlap_keywords,omitempty"`
}

// SearchResponse is the assembled pipeline output. This exact payload is what
// the result cache stores.
type SearchResponse struct {
	Jobs      []MatchedJob `json:"jobs"`
	Count     int          `json:"count"`
	Errors    []string     `json:"errors,omitempty"`
	Cached    bool         `json:"cached"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// TruncateDescription clips free text to MaxDescriptionLen.
func TruncateDescription(s string) string {
	if len(s) <= MaxDescriptionLen {
		return s
	}
	return s[:MaxDescriptionLen]
}
