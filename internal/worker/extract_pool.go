package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zathu/shopscrape/internal/domain/model"
)

// ExtractFunc fetches and extracts a single reference. The worker index lets
// callers pin per-worker resources such as a browser tab.
type ExtractFunc func(ctx context.Context, worker int, ref string) (*model.Product, error)

// ExtractPool runs page extractions with a bounded number of workers. The
// bound is explicit: a pool of size one reproduces a strictly sequential
// scrape, larger pools overlap page fetches.
type ExtractPool struct {
	workers int
	logger  *slog.Logger
}

// NewExtractPool constructs a pool with the given worker count.
func NewExtractPool(workers int, logger *slog.Logger) *ExtractPool {
	if workers <= 0 {
		workers = 1
	}
	return &ExtractPool{workers: workers, logger: logger}
}

// Workers reports the concurrency bound.
func (p *ExtractPool) Workers() int {
	return p.workers
}

type extractJob struct {
	index int
	ref   string
}

// Run processes refs and returns the successful extractions in input order.
// A failed reference is logged and dropped; it never fails the batch.
func (p *ExtractPool) Run(ctx context.Context, refs []string, fn ExtractFunc) []model.Product {
	jobs := make(chan extractJob)
	slots := make([]*model.Product, len(refs))

	workers := p.workers
	if workers > len(refs) {
		workers = len(refs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for job := range jobs {
				product, err := fn(ctx, worker, job.ref)
				if err != nil {
					p.logger.Error("extraction failed",
						slog.String("ref", job.ref),
						slog.String("error", err.Error()),
					)
					continue
				}
				slots[job.index] = product
			}
		}(i)
	}

dispatch:
	for i, ref := range refs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- extractJob{index: i, ref: ref}:
		}
	}
	close(jobs)
	wg.Wait()

	results := make([]model.Product, 0, len(refs))
	for _, product := range slots {
		if product != nil {
			results = append(results, *product)
		}
	}
	return results
}
