package adzuna

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchling-dev/jobscout/pkg/adzuna"
)

type fakeClient struct {
	postings []adzuna.Posting
	err      error
	params   adzuna.SearchParams
}

func (f *fakeClient) SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Posting, error) {
	f.params = params
	return f.postings, f.err
}

func (f *fakeClient) Country() string { return "za" }

func posting(id, title string) adzuna.Posting {
	p := adzuna.Posting{
		ID:          id,
		Title:       title,
		Description: "role description",
		RedirectURL: "https://adzuna.example/" + id,
		Created:     "2024-05-01T00:00:00Z",
	}
	p.Company.DisplayName = "Acme"
	p.Location.DisplayName = "Cape Town"
	return p
}

func TestFetchMapsPostings(t *testing.T) {
	client := &fakeClient{postings: []adzuna.Posting{posting("1", "Chemical Engineer")}}
	a, err := New(client, "cape town")
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 2, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "adzuna", j.Source)
	assert.Equal(t, "1", j.ExternalID)
	assert.Equal(t, "Chemical Engineer", j.Title)
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "za", j.Country)
	assert.Equal(t, "2024-05-01T00:00:00Z", j.PostedAt)

	assert.Equal(t, 2, client.params.Page)
	assert.Equal(t, 10, client.params.PerPage)
	assert.Equal(t, "cape town", client.params.Location)
}

func TestFetchSkipsUnusableAndDefaults(t *testing.T) {
	noTitle := posting("1", "")
	noURL := posting("2", "Engineer")
	noURL.RedirectURL = ""
	bare := posting("3", "Engineer")
	bare.Company.DisplayName = ""
	bare.Location.DisplayName = "  "

	client := &fakeClient{postings: []adzuna.Posting{noTitle, noURL, bare}}
	a, err := New(client, "")
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1, "postings without title or url must be dropped")

	assert.Equal(t, "Unknown", jobs[0].Company)
	assert.Equal(t, "Unknown", jobs[0].Location)
}

func TestFetchTruncatesDescription(t *testing.T) {
	long := posting("1", "Engineer")
	long.Description = strings.Repeat("x", 5000)

	client := &fakeClient{postings: []adzuna.Posting{long}}
	a, err := New(client, "")
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Len(t, jobs[0].Description, 2000)
}

func TestFetchPropagatesClientError(t *testing.T) {
	boom := errors.New("403")
	a, err := New(&fakeClient{err: boom}, "")
	require.NoError(t, err)

	_, err = a.Fetch(context.Background(), "engineer", 1, 10)
	require.ErrorIs(t, err, boom)
}

func TestNewRequiresClient(t *testing.T) {
	_, err := New(nil, "")
	require.Error(t, err)
}
