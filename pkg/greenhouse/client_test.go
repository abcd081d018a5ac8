package greenhouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListJobsDecodesBoard(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [
				{
					"id": 4001,
					"title": "Site Reliability Engineer",
					"absolute_url": "https://boards.greenhouse.io/acme/jobs/4001",
					"updated_at": "2024-03-20T10:00:00-04:00",
					"location": {"name": "New York, NY"}
				}
			],
			"meta": {"total": 1}
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	postings, err := client.ListJobs(context.Background(), "acme")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	if gotPath != "/v1/boards/acme/jobs" {
		t.Errorf("unexpected path %q", gotPath)
	}

	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}
	if postings[0].ID != 4001 {
		t.Errorf("unexpected id %d", postings[0].ID)
	}
	if postings[0].Location.Name != "New York, NY" {
		t.Errorf("unexpected location %q", postings[0].Location.Name)
	}
	if postings[0].AbsoluteURL == "" {
		t.Error("absolute_url must be populated")
	}
}

func TestListJobsRequiresBoardToken(t *testing.T) {
	client := NewClient(Config{})

	if _, err := client.ListJobs(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty board token")
	}
}

func TestListJobsUnknownBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.ListJobs(context.Background(), "nosuchboard")
	if err == nil {
		t.Fatal("expected error for unknown board")
	}
	if !strings.Contains(err.Error(), "nosuchboard") {
		t.Errorf("error should name the board, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}
