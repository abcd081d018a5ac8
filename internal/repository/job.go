package repository

import (
	"context"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

// JobRepository persists deduplicated postings after a successful
// aggregation. The pipeline treats it as best effort: a nil repository (or a
// failing upsert) never fails a search.
type JobRepository interface {
	UpsertJobs(ctx context.Context, jobs []domain.Job) error
}
