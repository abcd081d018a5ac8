package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

func TestDedupKeyNormalization(t *testing.T) {
	a := DedupKey("Senior Engineer!", "Acme, Inc.", "Cape Town")
	b := DedupKey("senior   engineer", "acme inc", "cape town")

	assert.Equal(t, a, b)
	assert.Equal(t, "senior engineer|acme inc|cape town", a)
}

func TestDeduplicateCollapsesEqualKeys(t *testing.T) {
	jobs := []domain.Job{
		{Source: "adzuna", ExternalID: "a1", Title: "Engineer", Company: "Acme", Location: "Berlin", ApplyURL: "https://a/1"},
		{Source: "remotive", ExternalID: "r9", Title: "ENGINEER", Company: "Acme, Inc", Location: "Berlin", ApplyURL: "https://r/9"},
	}

	// differing company punctuation keeps these apart, same casing collapses
	out := Deduplicate(jobs)
	require.Len(t, out, 2)

	jobs[1].Company = "Acme"
	out = Deduplicate(jobs)
	require.Len(t, out, 1)

	// first seen wins
	assert.Equal(t, "adzuna", out[0].Source)
	assert.Equal(t, "a1", out[0].ExternalID)
}

func TestDeduplicateIdempotent(t *testing.T) {
	jobs := []domain.Job{
		{Title: "Engineer", Company: "Acme", Location: "Berlin", ApplyURL: "https://a/1"},
		{Title: "Engineer", Company: "Acme", Location: "Berlin", ApplyURL: "https://b/1"},
		{Title: "Baker", Company: "Bread Co", Location: "Durban", ApplyURL: "https://c/1"},
		{Title: "Waiter", Company: "Cafe", Location: "Paris", ApplyURL: ""},
	}

	once := Deduplicate(jobs)
	twice := Deduplicate(once)

	assert.Equal(t, once, twice)
}

func TestDeduplicateByApplyURL(t *testing.T) {
	jobs := []domain.Job{
		{Title: "Engineer", Company: "Acme", Location: "Berlin", ApplyURL: "https://jobs.acme.com/1"},
		{Title: "Engineer (m/f/d)", Company: "ACME GmbH", Location: "Berlin, DE", ApplyURL: "https://jobs.acme.com/1"},
	}

	out := Deduplicate(jobs)
	require.Len(t, out, 1)
	assert.Equal(t, "Engineer", out[0].Title)
}

func TestDeduplicateEmptyURLNeverCollapses(t *testing.T) {
	jobs := []domain.Job{
		{Title: "Engineer", Company: "Acme", Location: "Berlin"},
		{Title: "Baker", Company: "Bread Co", Location: "Durban"},
	}

	out := Deduplicate(jobs)
	assert.Len(t, out, 2)
}

func TestCanonicalizeCollapsesWhitespace(t *testing.T) {
	j := Canonicalize(domain.Job{
		Title:    "  Senior\t Engineer ",
		Company:  " Acme  Inc ",
		Location: "Cape   Town",
		ApplyURL: " https://a/1 ",
	})

	assert.Equal(t, "Senior Engineer", j.Title)
	assert.Equal(t, "Acme Inc", j.Company)
	assert.Equal(t, "Cape Town", j.Location)
	assert.Equal(t, "https://a/1", j.ApplyURL)
}

func TestBoardCompanyName(t *testing.T) {
	assert.Equal(t, "Bread Co", BoardCompanyName("bread-co"))
	assert.Equal(t, "Stripe", BoardCompanyName("stripe"))
}

func TestMatchesQuery(t *testing.T) {
	j := domain.Job{Title: "Backend Engineer", Company: "Acme", Location: "Remote"}

	assert.True(t, MatchesQuery(j, "backend engineer"))
	assert.True(t, MatchesQuery(j, "engineer berlin")) // one word >2 chars matches
	assert.True(t, MatchesQuery(j, ""))
	assert.False(t, MatchesQuery(j, "baker"))
	assert.False(t, MatchesQuery(j, "qa")) // two-char words are ignored
}

func TestPage(t *testing.T) {
	jobs := make([]domain.Job, 25)
	for i := range jobs {
		jobs[i].ExternalID = string(rune('a' + i))
	}

	first := Page(jobs, 1, 10)
	require.Len(t, first, 10)
	assert.Equal(t, jobs[0].ExternalID, first[0].ExternalID)

	third := Page(jobs, 3, 10)
	require.Len(t, third, 5)

	assert.Empty(t, Page(jobs, 4, 10))
}
