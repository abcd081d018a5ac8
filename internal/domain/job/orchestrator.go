package job

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/pkg/logging"
)

const (
	defaultWorkers       = 8
	defaultSourceTimeout = 20 * time.Second
)

// Orchestrator fans a search out over every selected source adapter with
// bounded parallelism. Each adapter (including each configured ATS board,
// which registers as its own adapter) is an independent unit of work with its
// own timeout; one unit failing never aborts the others.
type Orchestrator struct {
	adapters []SourceAdapter
	timeout  time.Duration
	workers  int
	logger   *logging.Logger
}

// FetchOutcome carries the merged pre-dedup records plus per-source failures.
type FetchOutcome struct {
	Jobs     []domain.Job
	Errors   []*SourceError
	Launched int
}

// AllFailed reports whether every launched unit of work errored.
func (o FetchOutcome) AllFailed() bool {
	return o.Launched > 0 && len(o.Errors) == o.Launched
}

// NewOrchestrator builds an orchestrator over the given adapters.
// A zero timeout or worker count falls back to the defaults.
func NewOrchestrator(adapters []SourceAdapter, timeout time.Duration, workers int, logger *logging.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Orchestrator{
		adapters: adapters,
		timeout:  timeout,
		workers:  workers,
		logger:   logger.Named("orchestrator"),
	}
}

// Adapters exposes the registered adapters in registry order.
func (o *Orchestrator) Adapters() []SourceAdapter {
	return o.adapters
}

// Fetch runs the selected adapters concurrently and merges their results in
// registry order, so first-seen-wins dedup downstream is deterministic no
// matter which adapter finishes first. An unknown source selector simply
// matches nothing; selection never errors.
func (o *Orchestrator) Fetch(ctx context.Context, query string, page, limit int, sources []string) FetchOutcome {
	selected := o.selectAdapters(sources)
	if len(selected) == 0 {
		return FetchOutcome{}
	}

	slots := make([][]domain.Job, len(selected))
	failures := make([]*SourceError, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	start := time.Now()
	for i, adapter := range selected {
		g.Go(func() error {
			jobs, err := o.fetchOne(ctx, adapter, query, page, limit)
			if err != nil {
				failures[i] = classifySourceError(adapter.Name(), err)
				return nil
			}
			slots[i] = jobs
			return nil
		})
	}

	// Tasks record failures instead of returning them, so this never errors.
	_ = g.Wait()

	out := FetchOutcome{Launched: len(selected)}
	for i := range selected {
		out.Jobs = append(out.Jobs, slots[i]...)
		if failures[i] != nil {
			out.Errors = append(out.Errors, failures[i])
		}
	}

	o.logger.Debug("fetch round complete",
		"sources", len(selected),
		"jobs", len(out.Jobs),
		"failures", len(out.Errors),
		"elapsed", time.Since(start),
	)

	return out
}

// fetchOne runs a single adapter under its own deadline, converting panics
// into upstream errors so one misbehaving source cannot take down the round.
func (o *Orchestrator) fetchOne(ctx context.Context, adapter SourceAdapter, query string, page, limit int) (jobs []domain.Job, err error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			jobs = nil
			err = fmt.Errorf("source panicked: %v", r)
		}
	}()

	jobs, err = adapter.Fetch(ctx, query, page, limit)
	if err != nil {
		// Prefer the timeout classification when the deadline fired, even if
		// the adapter wrapped it as a transport error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return jobs, nil
}

func (o *Orchestrator) selectAdapters(sources []string) []SourceAdapter {
	if len(sources) == 0 {
		return o.adapters
	}

	want := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if s == "all" {
			return o.adapters
		}
		want[s] = struct{}{}
	}

	var selected []SourceAdapter
	for _, a := range o.adapters {
		if _, ok := want[a.Source()]; ok {
			selected = append(selected, a)
		}
	}

	return selected
}
