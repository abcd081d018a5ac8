// Package adzuna adapts the Adzuna REST API (keyword/location search with
// server-side pagination, country-scoped) into canonical Job records.
package adzuna

import (
	"context"
	"fmt"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/pkg/adzuna"
)

const sourceName = "adzuna"

// searchClient is the subset of the Adzuna client the adapter uses.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Posting, error)
	Country() string
}

// Adapter implements job.SourceAdapter backed by Adzuna
type Adapter struct {
	client   searchClient
	location string
}

// New builds an Adzuna adapter. The optional location is forwarded upstream
// as the "where" parameter on every search.
func New(client searchClient, location string) (*Adapter, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna adapter: client is required")
	}
	return &Adapter{client: client, location: location}, nil
}

func (a *Adapter) Name() string {
	return sourceName
}

func (a *Adapter) Source() string {
	return sourceName
}

// Fetch maps one Adzuna result page into canonical records.
func (a *Adapter) Fetch(ctx context.Context, query string, page, limit int) ([]domain.Job, error) {
	postings, err := a.client.SearchJobs(ctx, query, adzuna.SearchParams{
		Location: a.location,
		Page:     page,
		PerPage:  job.ClampLimit(limit),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(postings))
	for _, p := range postings {
		title := job.CleanText(p.Title)
		url := job.CleanText(p.RedirectURL)
		if title == "" || url == "" {
			continue
		}

		company := job.CleanText(p.Company.DisplayName)
		if company == "" {
			company = "Unknown"
		}
		location := job.CleanText(p.Location.DisplayName)
		if location == "" {
			location = "Unknown"
		}

		externalID := p.ID
		if externalID == "" {
			externalID = job.DedupKey(title, company, location)
		}

		j := domain.Job{
			Source:      sourceName,
			ExternalID:  externalID,
			Title:       title,
			Company:     company,
			Location:    location,
			Country:     a.client.Country(),
			JobType:     p.ContractTime,
			PostedAt:    p.Created,
			SalaryMin:   p.SalaryMin,
			SalaryMax:   p.SalaryMax,
			Description: domain.TruncateDescription(job.CleanText(p.Description)),
			ApplyURL:    url,
		}
		if p.Category.Label != "" {
			j.Tags = []string{p.Category.Label}
		}

		out = append(out, j)
	}

	return out, nil
}

var _ job.SourceAdapter = (*Adapter)(nil)
