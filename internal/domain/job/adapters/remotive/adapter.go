// Package remotive adapts the Remotive remote-jobs API. The upstream returns
// its full listing in one shot, so querying and pagination happen client-side
// after the fetch.
package remotive

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/pkg/remotive"
)

const sourceName = "remotive"

type listClient interface {
	ListJobs(ctx context.Context, search string) ([]remotive.Posting, error)
}

// Adapter implements job.SourceAdapter backed by Remotive
type Adapter struct {
	client listClient
}

func New(client listClient) (*Adapter, error) {
	if client == nil {
		return nil, fmt.Errorf("remotive adapter: client is required")
	}
	return &Adapter{client: client}, nil
}

func (a *Adapter) Name() string {
	return sourceName
}

func (a *Adapter) Source() string {
	return sourceName
}

// Fetch pulls the full listing, filters by the query client-side, and slices
// out the requested page.
func (a *Adapter) Fetch(ctx context.Context, query string, page, limit int) ([]domain.Job, error) {
	postings, err := a.client.ListJobs(ctx, query)
	if err != nil {
		return nil, err
	}

	remote := true

	out := make([]domain.Job, 0, len(postings))
	for _, p := range postings {
		title := job.CleanText(p.Title)
		url := job.CleanText(p.URL)
		if title == "" || url == "" {
			continue
		}

		company := job.CleanText(p.CompanyName)
		if company == "" {
			company = "Unknown"
		}
		location := job.CleanText(p.CandidateRequiredLocation)
		if location == "" {
			location = "Remote"
		}

		j := domain.Job{
			Source:      sourceName,
			ExternalID:  strconv.FormatInt(p.ID, 10),
			Title:       title,
			Company:     company,
			Location:    location,
			Remote:      &remote,
			JobType:     p.JobType,
			PostedAt:    p.PublicationDate,
			Description: domain.TruncateDescription(job.CleanText(p.Description)),
			ApplyURL:    url,
			Tags:        p.Tags,
		}

		if job.MatchesQuery(j, query) {
			out = append(out, j)
		}
	}

	return job.Page(out, page, limit), nil
}

var _ job.SourceAdapter = (*Adapter)(nil)
