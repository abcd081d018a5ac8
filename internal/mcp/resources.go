package mcp

import (
	"context"

	"github.com/hatchling-dev/jobscout/internal/cache"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/pkg/neo4j"
	"github.com/hatchling-dev/jobscout/pkg/sheets"
)

// Resources bundles everything the tool handlers need. SheetsClient and
// Neo4jClient are nil when unconfigured; the pipeline runs without them.
type Resources struct {
	JobService   job.Service
	Cache        *cache.Memory
	SheetsClient *sheets.Client
	Neo4jClient  *neo4j.Client
}

// Close releases any held connections.
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}
