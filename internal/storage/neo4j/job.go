package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/repository"
	pkgneo4j "github.com/hatchling-dev/jobscout/pkg/neo4j"
)

var _ repository.JobRepository = (*JobRepository)(nil)

// JobRepository stores deduplicated postings in Neo4j, keyed by
// (source, externalId) so repeated aggregations refresh rather than duplicate.
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{client: client}
}

// UpsertJobs merges job and company nodes for a batch of postings
func (r *JobRepository) UpsertJobs(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		UNWIND $jobs AS job
		MERGE (j:Job {source: job.source, externalId: job.externalId})
		SET j.title = job.title,
		    j.location = job.location,
		    j.country = job.country,
		    j.remote = job.remote,
		    j.jobType = job.jobType,
		    j.postedAt = job.postedAt,
		    j.salaryMin = job.salaryMin,
		    j.salaryMax = job.salaryMax,
		    j.salaryCurrency = job.salaryCurrency,
		    j.description = job.description,
		    j.applyUrl = job.applyUrl,
		    j.tags = job.tags
		WITH j, job
		MERGE (c:Company {name: job.company})
		MERGE (j)-[:POSTED_BY]->(c)
	`

	jobsData := make([]map[string]any, 0, len(jobs))
	for _, j := range jobs {
		var remote any
		if j.Remote != nil {
			remote = *j.Remote
		}

		jobsData = append(jobsData, map[string]any{
			"source":         j.Source,
			"externalId":     j.ExternalID,
			"title":          j.Title,
			"company":        j.Company,
			"location":       j.Location,
			"country":        j.Country,
			"remote":         remote,
			"jobType":        j.JobType,
			"postedAt":       j.PostedAt,
			"salaryMin":      j.SalaryMin,
			"salaryMax":      j.SalaryMax,
			"salaryCurrency": j.SalaryCurrency,
			"description":    j.Description,
			"applyUrl":       j.ApplyURL,
			"tags":           j.Tags,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, query, map[string]any{"jobs": jobsData})
	})

	return err
}
