package job

import (
	"context"
	"strings"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

// SourceAdapter translates one external provider into canonical Job records.
// Implementations are stateless and safe for concurrent use; each Fetch is a
// pure function of (query, page, limit) plus the upstream's current listing.
//
// Fetch never panics and never blocks past ctx: upstream failures come back
// as (nil, error), and records with an empty title or apply URL are dropped
// at this boundary.
type SourceAdapter interface {
	// Name identifies the unit of work, e.g. "adzuna" or "greenhouse:stripe".
	Name() string

	// Source is the provider family used for source selection, e.g. "greenhouse".
	Source() string

	Fetch(ctx context.Context, query string, page, limit int) ([]domain.Job, error)
}

const (
	// MaxLimit caps the per-call record count an adapter may be asked for.
	MaxLimit = 100

	defaultLimit = 50
)

// ClampLimit normalizes a caller-supplied limit into [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// CleanText trims and collapses internal whitespace.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MatchesQuery reports whether a job's visible text matches the query, using
// the same loose rule the boards-style sources need client-side: the whole
// query as a substring, or any query word longer than two characters.
func MatchesQuery(j domain.Job, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	hay := strings.ToLower(j.Title + " " + j.Company + " " + j.Location)
	if strings.Contains(hay, q) {
		return true
	}

	for _, w := range strings.Fields(q) {
		if len(w) > 2 && strings.Contains(hay, w) {
			return true
		}
	}

	return false
}

// Page slices a fully fetched list into the requested client-side page.
func Page(jobs []domain.Job, page, limit int) []domain.Job {
	if page < 1 {
		page = 1
	}
	limit = ClampLimit(limit)

	start := (page - 1) * limit
	if start >= len(jobs) {
		return nil
	}

	end := start + limit
	if end > len(jobs) {
		end = len(jobs)
	}

	return jobs[start:end]
}

// BoardCompanyName derives a display company name from an ATS board token,
// e.g. "bread-co" becomes "Bread Co".
func BoardCompanyName(token string) string {
	words := strings.Split(strings.ReplaceAll(token, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
