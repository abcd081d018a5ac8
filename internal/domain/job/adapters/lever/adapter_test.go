package lever

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchling-dev/jobscout/pkg/lever"
)

type fakeClient struct {
	postings []lever.Posting
	err      error
	slug     string
}

func (f *fakeClient) ListPostings(ctx context.Context, companySlug string) ([]lever.Posting, error) {
	f.slug = companySlug
	return f.postings, f.err
}

func posting(id, title string) lever.Posting {
	p := lever.Posting{
		ID:              id,
		Text:            title,
		HostedURL:       "https://jobs.lever.co/acme/" + id,
		CreatedAt:       1714521600000,
		DescriptionText: "keep the platform healthy",
	}
	p.Categories.Location = "London"
	p.Categories.Commitment = "Full-time"
	return p
}

func TestFetchMapsBoard(t *testing.T) {
	remote := posting("a1", "Platform Engineer")
	remote.WorkplaceType = "remote"
	remote.Categories.Team = "Infrastructure"
	onsite := posting("a2", "Office Engineer")
	onsite.WorkplaceType = "on-site"

	client := &fakeClient{postings: []lever.Posting{remote, onsite}}
	a, err := New(client, "acme")
	require.NoError(t, err)

	assert.Equal(t, "lever:acme", a.Name())
	assert.Equal(t, "lever", a.Source())

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "acme", client.slug)

	j := jobs[0]
	assert.Equal(t, "a1", j.ExternalID)
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "London", j.Location)
	assert.Equal(t, "Full-time", j.JobType)
	assert.Equal(t, "1714521600000", j.PostedAt, "createdAt stays provider-native epoch ms")
	require.NotNil(t, j.Remote)
	assert.True(t, *j.Remote)
	assert.Equal(t, []string{"Infrastructure"}, j.Tags)

	assert.Nil(t, jobs[1].Remote, "non-remote workplace type stays unknown")
}

func TestFetchFallsBackToApplyURLAndSyntheticID(t *testing.T) {
	p := posting("", "Engineer")
	p.HostedURL = ""
	p.ApplyURL = "https://jobs.lever.co/acme/apply"

	a, err := New(&fakeClient{postings: []lever.Posting{p}}, "acme")
	require.NoError(t, err)

	jobs, err := a.Fetch(context.Background(), "engineer", 1, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://jobs.lever.co/acme/apply", jobs[0].ApplyURL)
	assert.NotEmpty(t, jobs[0].ExternalID, "missing posting id gets a synthetic one")
}

func TestFetchPropagatesClientError(t *testing.T) {
	boom := errors.New("404")
	a, err := New(&fakeClient{err: boom}, "acme")
	require.NoError(t, err)

	_, err = a.Fetch(context.Background(), "engineer", 1, 10)
	require.ErrorIs(t, err, boom)
}

func TestNewValidatesArgs(t *testing.T) {
	_, err := New(nil, "acme")
	require.Error(t, err)

	_, err = New(&fakeClient{}, "")
	require.Error(t, err)
}
