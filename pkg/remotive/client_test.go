package remotive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListJobsDecodesListing(t *testing.T) {
	var gotPath, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"job-count": 2,
			"jobs": [
				{
					"id": 101,
					"title": "Backend Engineer",
					"company_name": "Remote Co",
					"candidate_required_location": "Worldwide",
					"url": "https://remotive.com/jobs/101",
					"category": "Software Development",
					"job_type": "full_time",
					"publication_date": "2024-04-01T08:00:00",
					"salary": "$90k",
					"description": "<p>build things</p>",
					"tags": ["go", "postgres"]
				},
				{
					"id": 102,
					"title": "Designer",
					"company_name": "Pixel Co",
					"candidate_required_location": "Europe",
					"url": "https://remotive.com/jobs/102",
					"job_type": "contract",
					"publication_date": "2024-04-02T08:00:00"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	postings, err := client.ListJobs(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	if gotPath != "/api/remote-jobs" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if !strings.Contains(gotQuery, "search=engineer") {
		t.Errorf("search term not forwarded, query %q", gotQuery)
	}

	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}
	if postings[0].ID != 101 {
		t.Errorf("unexpected id %d", postings[0].ID)
	}
	if postings[0].CompanyName != "Remote Co" {
		t.Errorf("unexpected company %q", postings[0].CompanyName)
	}
	if postings[0].CandidateRequiredLocation != "Worldwide" {
		t.Errorf("unexpected location %q", postings[0].CandidateRequiredLocation)
	}
	if len(postings[0].Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", postings[0].Tags)
	}
}

func TestListJobsOmitsEmptySearch(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"job-count": 0, "jobs": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.ListJobs(context.Background(), ""); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("empty search must not produce a query string, got %q", gotQuery)
	}
}

func TestListJobsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.ListJobs(context.Background(), "engineer")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}
