//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/hatchling-dev/jobscout/internal/config"
	"github.com/hatchling-dev/jobscout/pkg/logging"
)

// InitializeResources wires the adapter registry, orchestrator, cache,
// optional persistence, and optional Sheets export into a Resources bundle.
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		provideAdapters,
		provideOrchestrator,
		provideCache,
		provideNeo4jClient,
		provideJobRepository,
		provideSheetsClient,
		provideJobService,
		newResources,
	)

	return &Resources{}, nil
}
