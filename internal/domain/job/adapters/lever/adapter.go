// Package lever adapts one public Lever postings board, one adapter instance
// per configured company slug.
package lever

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/pkg/lever"
)

const sourceName = "lever"

type postingsClient interface {
	ListPostings(ctx context.Context, companySlug string) ([]lever.Posting, error)
}

// Adapter implements job.SourceAdapter for a single Lever board
type Adapter struct {
	client  postingsClient
	slug    string
	company string
}

func New(client postingsClient, companySlug string) (*Adapter, error) {
	if client == nil {
		return nil, fmt.Errorf("lever adapter: client is required")
	}
	if companySlug == "" {
		return nil, fmt.Errorf("lever adapter: company slug is required")
	}

	return &Adapter{
		client:  client,
		slug:    companySlug,
		company: job.BoardCompanyName(companySlug),
	}, nil
}

func (a *Adapter) Name() string {
	return sourceName + ":" + a.slug
}

func (a *Adapter) Source() string {
	return sourceName
}

// Fetch lists the board and filters client-side, like the Greenhouse adapter.
func (a *Adapter) Fetch(ctx context.Context, query string, page, limit int) ([]domain.Job, error) {
	postings, err := a.client.ListPostings(ctx, a.slug)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(postings))
	for _, p := range postings {
		title := job.CleanText(p.Text)
		url := job.CleanText(p.HostedURL)
		if url == "" {
			url = job.CleanText(p.ApplyURL)
		}
		if title == "" || url == "" {
			continue
		}

		location := job.CleanText(p.Categories.Location)
		if location == "" {
			location = "Unknown"
		}

		j := domain.Job{
			Source:      sourceName,
			ExternalID:  p.ID,
			Title:       title,
			Company:     a.company,
			Location:    location,
			JobType:     p.Categories.Commitment,
			Description: domain.TruncateDescription(job.CleanText(p.DescriptionText)),
			ApplyURL:    url,
		}
		if p.ID == "" {
			j.ExternalID = job.DedupKey(title, a.company, location)
		}
		if p.CreatedAt > 0 {
			j.PostedAt = strconv.FormatInt(p.CreatedAt, 10)
		}
		if strings.EqualFold(p.WorkplaceType, "remote") {
			remote := true
			j.Remote = &remote
		}
		if p.Categories.Team != "" {
			j.Tags = []string{p.Categories.Team}
		}

		if job.MatchesQuery(j, query) {
			out = append(out, j)
		}
	}

	return job.Page(out, page, limit), nil
}

var _ job.SourceAdapter = (*Adapter)(nil)
