package mcp

import (
	"context"

	"github.com/hatchling-dev/jobscout/internal/cache"
	"github.com/hatchling-dev/jobscout/internal/config"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	adzunaAdapter "github.com/hatchling-dev/jobscout/internal/domain/job/adapters/adzuna"
	greenhouseAdapter "github.com/hatchling-dev/jobscout/internal/domain/job/adapters/greenhouse"
	leverAdapter "github.com/hatchling-dev/jobscout/internal/domain/job/adapters/lever"
	remotiveAdapter "github.com/hatchling-dev/jobscout/internal/domain/job/adapters/remotive"
	"github.com/hatchling-dev/jobscout/internal/repository"
	storage "github.com/hatchling-dev/jobscout/internal/storage/neo4j"
	"github.com/hatchling-dev/jobscout/pkg/adzuna"
	"github.com/hatchling-dev/jobscout/pkg/greenhouse"
	"github.com/hatchling-dev/jobscout/pkg/lever"
	"github.com/hatchling-dev/jobscout/pkg/logging"
	n4j "github.com/hatchling-dev/jobscout/pkg/neo4j"
	"github.com/hatchling-dev/jobscout/pkg/remotive"
	"github.com/hatchling-dev/jobscout/pkg/sheets"
)

// provideAdapters expands the configuration into the adapter registry.
// A source whose credentials are absent is skipped silently: missing config
// disables an adapter, it is not a fault. Each ATS board token registers as
// its own adapter so boards share the orchestrator's worker pool instead of
// looping sequentially inside one adapter.
func provideAdapters(cfg config.Config, logger *logging.Logger) []job.SourceAdapter {
	log := logger.Named("registry")
	var adapters []job.SourceAdapter

	if cfg.SourceEnabled("adzuna") {
		if cfg.Adzuna.AppID != "" && cfg.Adzuna.AppKey != "" {
			client, err := adzuna.NewClient(adzuna.Config{
				AppID:   cfg.Adzuna.AppID,
				AppKey:  cfg.Adzuna.AppKey,
				Country: cfg.Adzuna.Country,
			})
			if err == nil {
				if a, err := adzunaAdapter.New(client, cfg.Adzuna.Location); err == nil {
					adapters = append(adapters, a)
				}
			} else {
				log.Warn("adzuna client init failed", "err", err)
			}
		} else {
			log.Debug("adzuna credentials absent, source disabled")
		}
	}

	if cfg.SourceEnabled("remotive") {
		if a, err := remotiveAdapter.New(remotive.NewClient(remotive.Config{})); err == nil {
			adapters = append(adapters, a)
		}
	}

	if cfg.SourceEnabled("greenhouse") && len(cfg.GreenhouseBoards) > 0 {
		client := greenhouse.NewClient(greenhouse.Config{})
		for _, token := range cfg.GreenhouseBoards {
			if a, err := greenhouseAdapter.New(client, token); err == nil {
				adapters = append(adapters, a)
			}
		}
	}

	if cfg.SourceEnabled("lever") && len(cfg.LeverBoards) > 0 {
		client := lever.NewClient(lever.Config{})
		for _, slug := range cfg.LeverBoards {
			if a, err := leverAdapter.New(client, slug); err == nil {
				adapters = append(adapters, a)
			}
		}
	}

	log.Info("source registry built", "adapters", len(adapters))
	return adapters
}

func provideOrchestrator(adapters []job.SourceAdapter, cfg config.Config, logger *logging.Logger) *job.Orchestrator {
	return job.NewOrchestrator(adapters, cfg.SourceTimeout, cfg.FetchWorkers, logger)
}

func provideCache(cfg config.Config) *cache.Memory {
	return cache.NewMemory(cfg.CacheTTL)
}

// provideNeo4jClient connects to Neo4j when configured, nil otherwise.
func provideNeo4jClient(cfg config.Config, logger *logging.Logger) (*n4j.Client, error) {
	if !cfg.Neo4jConfigured() {
		logger.Debug("neo4j not configured, persistence disabled")
		return nil, nil
	}

	client, err := n4j.NewClient(n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("neo4j client initialized", "uri", cfg.Neo4j.URI)
	return client, nil
}

func provideJobRepository(client *n4j.Client) repository.JobRepository {
	if client == nil {
		return nil
	}
	return storage.NewJobRepository(client)
}

// provideSheetsClient builds the export client when credentials are present.
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sheets.Client, error) {
	if cfg.Sheets.CredentialsPath == "" {
		return nil, nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, err
	}

	logger.Info("sheets client initialized")
	return client, nil
}

func provideJobService(orch *job.Orchestrator, mem *cache.Memory, repo repository.JobRepository, logger *logging.Logger) (job.Service, error) {
	opts := []job.Option{
		job.WithCache(mem),
		job.WithLogger(logger),
	}
	if repo != nil {
		opts = append(opts, job.WithRepository(repo))
	}

	return job.NewService(orch, opts...)
}

func newResources(svc job.Service, mem *cache.Memory, sheetsClient *sheets.Client, neo4jClient *n4j.Client) *Resources {
	return &Resources{
		JobService:   svc,
		Cache:        mem,
		SheetsClient: sheetsClient,
		Neo4jClient:  neo4jClient,
	}
}
