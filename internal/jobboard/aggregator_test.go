//go:build unit

package jobboard_test

import (
	"context"
	"testing"

	"jobradar/internal/domain/posting"
	"jobradar/internal/jobboard"
	"jobradar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	source posting.Source
	page   jobboard.Page
	err    error
}

func (s *stubAdapter) Source() posting.Source { return s.source }

func (s *stubAdapter) Fetch(_ context.Context, _ jobboard.Query) (jobboard.Page, error) {
	return s.page, s.err
}

type stubStore struct {
	upserted []posting.JobPosting
	count    int
	err      error
}

func (s *stubStore) UpsertBatch(_ context.Context, postings []posting.JobPosting) (int, error) {
	s.upserted = postings
	return s.count, s.err
}

func pageOf(source posting.Source, total int, titles ...string) jobboard.Page {
	page := jobboard.Page{TotalCount: total}
	for _, title := range titles {
		page.Postings = append(page.Postings, posting.JobPosting{
			ExternalID: string(source) + "_" + title,
			Title:      title,
			Source:     source,
			IsActive:   true,
		})
	}
	return page
}

func TestAggregatorFetchAll(t *testing.T) {
	query := jobboard.Query{Keywords: "golang", Location: "London", Page: 1}

	t.Run("merges pages in adapter order", func(t *testing.T) {
		agg := jobboard.NewAggregator([]jobboard.Adapter{
			&stubAdapter{source: posting.SourceAdzuna, page: pageOf(posting.SourceAdzuna, 40, "a1", "a2")},
			&stubAdapter{source: posting.SourceReed, page: pageOf(posting.SourceReed, 15, "r1")},
		}, &stubStore{}, nil)

		merged := agg.FetchAll(context.Background(), query)

		require.Len(t, merged.Postings, 3)
		assert.Equal(t, 55, merged.TotalCount)
		assert.Equal(t, "a1", merged.Postings[0].Title)
		assert.Equal(t, "a2", merged.Postings[1].Title)
		assert.Equal(t, "r1", merged.Postings[2].Title)
	})

	t.Run("failed adapter contributes nothing", func(t *testing.T) {
		agg := jobboard.NewAggregator([]jobboard.Adapter{
			&stubAdapter{source: posting.SourceAdzuna, err: errs.New("upstream 500")},
			&stubAdapter{source: posting.SourceReed, page: pageOf(posting.SourceReed, 15, "r1")},
			&stubAdapter{source: posting.SourceZipRecruiter, page: pageOf(posting.SourceZipRecruiter, 7, "z1")},
		}, &stubStore{}, nil)

		merged := agg.FetchAll(context.Background(), query)

		require.Len(t, merged.Postings, 2)
		assert.Equal(t, 22, merged.TotalCount)
		assert.Equal(t, "r1", merged.Postings[0].Title)
		assert.Equal(t, "z1", merged.Postings[1].Title)
	})

	t.Run("all adapters failing yields empty page", func(t *testing.T) {
		agg := jobboard.NewAggregator([]jobboard.Adapter{
			&stubAdapter{source: posting.SourceAdzuna, err: errs.New("timeout")},
			&stubAdapter{source: posting.SourceReed, err: errs.New("timeout")},
		}, &stubStore{}, nil)

		merged := agg.FetchAll(context.Background(), query)

		assert.Empty(t, merged.Postings)
		assert.Zero(t, merged.TotalCount)
	})

	t.Run("no adapters", func(t *testing.T) {
		agg := jobboard.NewAggregator(nil, &stubStore{}, nil)

		merged := agg.FetchAll(context.Background(), query)

		assert.Empty(t, merged.Postings)
	})
}

func TestAggregatorStoreJobs(t *testing.T) {
	t.Run("upserts batch and returns stored count", func(t *testing.T) {
		store := &stubStore{count: 2}
		agg := jobboard.NewAggregator(nil, store, nil)

		postings := pageOf(posting.SourceAdzuna, 2, "a1", "a2").Postings
		n, err := agg.StoreJobs(context.Background(), postings)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, postings, store.upserted)
	})

	t.Run("empty batch skips storage", func(t *testing.T) {
		store := &stubStore{err: errs.New("must not be called")}
		agg := jobboard.NewAggregator(nil, store, nil)

		n, err := agg.StoreJobs(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Nil(t, store.upserted)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		store := &stubStore{err: errs.New("connection reset")}
		agg := jobboard.NewAggregator(nil, store, nil)

		_, err := agg.StoreJobs(context.Background(), pageOf(posting.SourceReed, 1, "r1").Postings)

		assert.Error(t, err)
	})
}
