package jobboard

import (
	"context"
	"log/slog"
	"sync"

	"jobradar/internal/domain/posting"
)

// PostingStore is the storage the aggregator writes through. UpsertBatch is
// keyed by external ID: insert if absent, otherwise overwrite the mutable
// fields, as one bulk operation.
type PostingStore interface {
	UpsertBatch(ctx context.Context, postings []posting.JobPosting) (int, error)
}

// Aggregator fans one query out to every adapter concurrently and merges
// the pages that succeeded. The fan-out never fails atomically: all calls
// are fired, all are awaited, and a failed or empty adapter simply
// contributes nothing.
type Aggregator struct {
	adapters []Adapter
	store    PostingStore
	logger   *slog.Logger
}

func NewAggregator(adapters []Adapter, store PostingStore, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{adapters: adapters, store: store, logger: logger}
}

// outcome is one settled adapter call.
type outcome struct {
	page Page
	err  error
}

// FetchAll issues every adapter fetch concurrently and waits for all of
// them to settle. Successful pages are concatenated in adapter order and
// their reported counts summed; failures are logged and discarded. No
// cross-source dedup happens here, the storage upsert provides it.
func (a *Aggregator) FetchAll(ctx context.Context, q Query) Page {
	outcomes := make([]outcome, len(a.adapters))

	var wg sync.WaitGroup
	for i, adapter := range a.adapters {
		wg.Add(1)
		go func(i int, adapter Adapter) {
			defer wg.Done()
			page, err := adapter.Fetch(ctx, q)
			outcomes[i] = outcome{page: page, err: err}
		}(i, adapter)
	}
	wg.Wait()

	var merged Page
	for i, out := range outcomes {
		if out.err != nil {
			a.logger.Warn("job board fetch failed",
				"source", a.adapters[i].Source(),
				"keywords", q.Keywords,
				"error", out.err)
			continue
		}
		merged.Postings = append(merged.Postings, out.page.Postings...)
		merged.TotalCount += out.page.TotalCount
	}
	return merged
}

// StoreJobs upserts the postings as a single batch and returns how many
// were written.
func (a *Aggregator) StoreJobs(ctx context.Context, postings []posting.JobPosting) (int, error) {
	if len(postings) == 0 {
		return 0, nil
	}
	n, err := a.store.UpsertBatch(ctx, postings)
	if err != nil {
		return 0, err
	}
	a.logger.Info("stored postings", "count", n)
	return n, nil
}
