package core

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/EmundoT/deployfix/internal/types"
)

// fixAction is one remediation policy bound to a project.
type fixAction struct {
	category    types.FixCategory
	description string
	// paths are relative to the project root
	paths []string
	apply func(ctx context.Context) error
}

// FixResult represents the result of applying a single fix
type FixResult struct {
	Category    types.FixCategory
	Description string
	Paths       []string
	Error       error
}

// FixExecutor applies independent fixes concurrently using a worker pool.
// Results come back in category order regardless of completion order.
type FixExecutor struct {
	maxWorkers int
	progress   ProgressTracker
}

// NewFixExecutor creates a fix executor. workers <= 0 means NumCPU; the pool is capped at MaxWorkers.
func NewFixExecutor(workers int, progress ProgressTracker) *FixExecutor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	if progress == nil {
		progress = noopProgress{}
	}
	return &FixExecutor{maxWorkers: workers, progress: progress}
}

// Execute runs every action and returns one result per action, sorted by category.
func (p *FixExecutor) Execute(ctx context.Context, actions []fixAction) []FixResult {
	if len(actions) == 0 {
		return nil
	}

	workerCount := p.maxWorkers
	if workerCount > len(actions) {
		workerCount = len(actions)
	}

	jobs := make(chan fixAction, len(actions))
	results := make(chan FixResult, len(actions))

	p.progress.SetTotal(len(actions))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.fixWorker(ctx, &wg, jobs, results)
	}

	for _, a := range actions {
		jobs <- a
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	all := make([]FixResult, 0, len(actions))
	for r := range results {
		all = append(all, r)
		if r.Error == nil {
			p.progress.Increment(r.Description)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Category < all[j].Category })
	return all
}

// fixWorker applies fixes from the jobs channel until it is drained.
// A cancelled context marks remaining jobs as failed without running them.
func (p *FixExecutor) fixWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan fixAction,
	results chan<- FixResult,
) {
	defer wg.Done()

	for a := range jobs {
		r := FixResult{Category: a.category, Description: a.description, Paths: a.paths}
		if err := ctx.Err(); err != nil {
			r.Error = err
		} else {
			r.Error = a.apply(ctx)
		}
		results <- r
	}
}
