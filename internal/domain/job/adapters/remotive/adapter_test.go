package remotive

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchling-dev/jobscout/pkg/remotive"
)

type fakeClient struct {
	postings []remotive.Posting
	err      error
	search   string
}

func (f *fakeClient) ListJobs(ctx context.Context, search string) ([]remotive.Posting, error) {
	f.search = search
	return f.postings, f.err
}

func posting(id int64, title, company string) remotive.Posting {
	return remotive.Posting{
		ID:                        id,
		Title:                     title,
		CompanyName:               company,
		CandidateRequiredLocation: "Worldwide",
		URL:                       "https://remotive.com/jobs/1",
		JobType:                   "full_time",
		PublicationDate:           "2024-04-01T08:00:00",
		Description:               "build things",
		Tags:                      []string{"go"},
	}
}

func TestFetchMapsAndFilters(t *testing.T) {
	client := &fakeClient{postings: []remotive.Posting{
		posting(101, "Backend Engineer", "Remote Co"),
		posting(102, "Pastry Chef", "Bread Co"),
	}}
	a, err := New(client)
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1, "non-matching postings must be filtered client-side")

	j := jobs[0]
	assert.Equal(t, "remotive", j.Source)
	assert.Equal(t, "101", j.ExternalID)
	assert.Equal(t, "Backend Engineer", j.Title)
	require.NotNil(t, j.Remote)
	assert.True(t, *j.Remote, "every Remotive posting is remote")
	assert.Equal(t, "engineer", client.search, "query is still forwarded upstream")
}

func TestFetchDefaultsMissingFields(t *testing.T) {
	p := posting(101, "Engineer", "")
	p.CandidateRequiredLocation = ""

	a, err := New(&fakeClient{postings: []remotive.Posting{p}})
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Unknown", jobs[0].Company)
	assert.Equal(t, "Remote", jobs[0].Location)
}

func TestFetchPagesClientSide(t *testing.T) {
	postings := make([]remotive.Posting, 0, 5)
	for i := int64(1); i <= 5; i++ {
		p := posting(i, "Engineer", "Remote Co")
		postings = append(postings, p)
	}

	a, err := New(&fakeClient{postings: postings})
	require.NoError(t, err)

	page1, err := a.Fetch(context.Background(), "engineer", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := a.Fetch(context.Background(), "engineer", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	page4, err := a.Fetch(context.Background(), "engineer", 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestFetchPropagatesClientError(t *testing.T) {
	boom := errors.New("429")
	a, err := New(&fakeClient{err: boom})
	require.NoError(t, err)

	_, err = a.Fetch(context.Background(), "engineer", 1, 10)
	require.ErrorIs(t, err, boom)
}
