// Package greenhouse adapts one public Greenhouse job board. Every
// configured board token registers as its own adapter instance, so each
// board is an independent unit of work under the orchestrator's pool.
package greenhouse

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/pkg/greenhouse"
)

const sourceName = "greenhouse"

type boardClient interface {
	ListJobs(ctx context.Context, boardToken string) ([]greenhouse.Posting, error)
}

// Adapter implements job.SourceAdapter for a single Greenhouse board
type Adapter struct {
	client  boardClient
	token   string
	company string
}

func New(client boardClient, boardToken string) (*Adapter, error) {
	if client == nil {
		return nil, fmt.Errorf("greenhouse adapter: client is required")
	}
	if boardToken == "" {
		return nil, fmt.Errorf("greenhouse adapter: board token is required")
	}

	return &Adapter{
		client:  client,
		token:   boardToken,
		company: job.BoardCompanyName(boardToken),
	}, nil
}

func (a *Adapter) Name() string {
	return sourceName + ":" + a.token
}

func (a *Adapter) Source() string {
	return sourceName
}

// Fetch lists the whole board and filters by substring match on the job's
// visible text; boards have no server-side search.
func (a *Adapter) Fetch(ctx context.Context, query string, page, limit int) ([]domain.Job, error) {
	postings, err := a.client.ListJobs(ctx, a.token)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(postings))
	for _, p := range postings {
		title := job.CleanText(p.Title)
		url := job.CleanText(p.AbsoluteURL)
		if title == "" || url == "" {
			continue
		}

		location := job.CleanText(p.Location.Name)
		if location == "" {
			location = "Unknown"
		}

		j := domain.Job{
			Source:     sourceName,
			ExternalID: strconv.FormatInt(p.ID, 10),
			Title:      title,
			Company:    a.company,
			Location:   location,
			PostedAt:   p.UpdatedAt,
			ApplyURL:   url,
		}

		if job.MatchesQuery(j, query) {
			out = append(out, j)
		}
	}

	return job.Page(out, page, limit), nil
}

var _ job.SourceAdapter = (*Adapter)(nil)
