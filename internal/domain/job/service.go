package job

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hatchling-dev/jobscout/internal/cache"
	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/match"
	"github.com/hatchling-dev/jobscout/internal/repository"
	"github.com/hatchling-dev/jobscout/pkg/logging"
)

// Service is the aggregation pipeline: cache check, concurrent fetch, dedup,
// optional profile matching, optional persistence, cache store.
type Service interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error)
	Match(ctx context.Context, profileText string, jobs []domain.Job) ([]domain.MatchedJob, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	orchestrator *Orchestrator
	cache        cache.Cache
	repo         repository.JobRepository
	logger       *logging.Logger
	clock        func() time.Time
}

// WithCache sets the result cache
func WithCache(c cache.Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithRepository sets the optional job store
func WithRepository(repo repository.JobRepository) Option {
	return func(cfg *config) {
		cfg.repo = repo
	}
}

// WithLogger sets the pipeline logger
func WithLogger(logger *logging.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

// NewService builds the pipeline around an orchestrator
func NewService(orch *Orchestrator, opts ...Option) (Service, error) {
	if orch == nil {
		return nil, fmt.Errorf("job.Service: orchestrator is required")
	}

	cfg := &config{
		orchestrator: orch,
		logger:       logging.NewNop(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &service{
		orchestrator: cfg.orchestrator,
		cache:        cfg.cache,
		repo:         cfg.repo,
		matcher:      match.New(),
		logger:       cfg.logger.Named("pipeline"),
		clock:        cfg.clock,
	}, nil
}

type service struct {
	orchestrator *Orchestrator
	cache        cache.Cache
	repo         repository.JobRepository
	matcher      *match.Matcher
	logger       *logging.Logger
	clock        func() time.Time
}

// Search runs the full pipeline for one query signature.
func (s *service) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return domain.SearchResponse{}, fmt.Errorf("query is required")
	}

	if req.Page < 1 {
		req.Page = 1
	}
	req.Limit = ClampLimit(req.Limit)

	key := Signature(req)
	log := s.logger.With("round_id", uuid.NewString())

	if s.cache != nil {
		if resp, hit := s.cache.Get(key); hit {
			resp.Cached = true
			log.Debug("cache hit", "key", key)
			return resp, nil
		}
	}

	outcome := s.orchestrator.Fetch(ctx, req.Query, req.Page, req.Limit, req.Sources)
	if outcome.AllFailed() {
		return domain.SearchResponse{}, fmt.Errorf("%w: %v", ErrAllSourcesFailed, joinErrors(outcome.Errors))
	}

	jobs := Deduplicate(outcome.Jobs)
	jobs = applyFilters(jobs, req.Filters)
	if len(jobs) > req.Limit {
		jobs = jobs[:req.Limit]
	}

	resp := domain.SearchResponse{
		Count:     len(jobs),
		FetchedAt: s.clock().UTC(),
	}
	for _, e := range outcome.Errors {
		resp.Errors = append(resp.Errors, e.Error())
	}

	if req.ProfileText != "" {
		matched, err := s.matcher.Rank(req.ProfileText, jobs)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		resp.Jobs = matched
	} else {
		resp.Jobs = make([]domain.MatchedJob, 0, len(jobs))
		for _, j := range jobs {
			resp.Jobs = append(resp.Jobs, domain.MatchedJob{Job: j})
		}
	}

	if s.repo != nil && len(jobs) > 0 {
		if err := s.repo.UpsertJobs(ctx, jobs); err != nil {
			log.Warn("job store upsert failed", "err", err, "jobs", len(jobs))
		}
	}

	if s.cache != nil {
		s.cache.Set(key, resp)
	}

	log.Debug("search completed",
		"query", req.Query,
		"count", resp.Count,
		"source_errors", len(resp.Errors),
	)

	return resp, nil
}

// Match scores a caller-supplied job list against a profile without touching
// any upstream source.
func (s *service) Match(ctx context.Context, profileText string, jobs []domain.Job) ([]domain.MatchedJob, error) {
	_ = ctx

	canonical := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		canonical = append(canonical, Canonicalize(j))
	}

	return s.matcher.Rank(profileText, canonical)
}

// Signature builds the normalized cache key for a request. The profile text
// participates as a short fingerprint: cached payloads carry match scores, so
// two profiles must never share an entry.
func Signature(req domain.SearchRequest) string {
	sources := append([]string(nil), req.Sources...)
	for i, s := range sources {
		sources[i] = strings.ToLower(strings.TrimSpace(s))
	}

	parts := []string{
		strings.ToLower(CleanText(req.Query)),
		strings.ToLower(CleanText(req.Filters.Country)),
		strings.ToLower(CleanText(req.Filters.Location)),
		strings.ToLower(CleanText(req.Filters.Company)),
		strconv.FormatBool(req.Filters.RemoteOnly),
		strconv.Itoa(req.Page),
		strconv.Itoa(req.Limit),
		strings.Join(sources, ","),
		profileFingerprint(req.ProfileText),
	}

	return strings.Join(parts, "|")
}

func profileFingerprint(profile string) string {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return ""
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(profile))
	return strconv.FormatUint(h.Sum64(), 16)
}

func applyFilters(jobs []domain.Job, f domain.SearchFilters) []domain.Job {
	if f.Country == "" && f.Location == "" && f.Company == "" && !f.RemoteOnly {
		return jobs
	}

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Country != "" && !strings.EqualFold(j.Country, f.Country) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.Company != "" && !strings.Contains(strings.ToLower(j.Company), strings.ToLower(f.Company)) {
			continue
		}
		if f.RemoteOnly && (j.Remote == nil || !*j.Remote) {
			continue
		}
		out = append(out, j)
	}

	return out
}

func joinErrors(errs []*SourceError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
