//go:build unit

package queries_test

import (
	"context"
	"testing"

	"jobradar/internal/domain/posting"
	"jobradar/internal/infra"
	"jobradar/internal/infra/repository"
	"jobradar/internal/jobboard"
	"jobradar/internal/pkg/errs"
	"jobradar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostingStore struct {
	searchResults [][]posting.JobPosting
	searchCalls   []repository.SearchFilter
	count         int
	byID          map[uuid.UUID]*posting.JobPosting
}

func (s *fakePostingStore) Search(_ context.Context, f repository.SearchFilter) ([]posting.JobPosting, error) {
	s.searchCalls = append(s.searchCalls, f)
	if len(s.searchResults) == 0 {
		return nil, nil
	}
	result := s.searchResults[0]
	if len(s.searchResults) > 1 {
		s.searchResults = s.searchResults[1:]
	}
	return result, nil
}

func (s *fakePostingStore) CountSearch(_ context.Context, _ repository.SearchFilter) (int, error) {
	return s.count, nil
}

func (s *fakePostingStore) FindByID(_ context.Context, id uuid.UUID) (*posting.JobPosting, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("posting not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type fakeFetcher struct {
	page       jobboard.Page
	fetchCalls []jobboard.Query
	stored     [][]posting.JobPosting
}

func (f *fakeFetcher) FetchAll(_ context.Context, q jobboard.Query) jobboard.Page {
	f.fetchCalls = append(f.fetchCalls, q)
	return f.page
}

func (f *fakeFetcher) StoreJobs(_ context.Context, postings []posting.JobPosting) (int, error) {
	f.stored = append(f.stored, postings)
	return len(postings), nil
}

type fakeJobIndex struct {
	ids map[uuid.UUID]bool
}

func (f *fakeJobIndex) JobIDsByUser(_ context.Context, _ uuid.UUID) (map[uuid.UUID]bool, error) {
	return f.ids, nil
}

func titled(title string) posting.JobPosting {
	return posting.JobPosting{ID: uuid.New(), ExternalID: "x_" + title, Title: title, IsActive: true}
}

func manyPostings(n int) []posting.JobPosting {
	out := make([]posting.JobPosting, n)
	for i := range out {
		out[i] = titled("Software Engineer")
	}
	return out
}

func newJobQueries(store *fakePostingStore, fetcher *fakeFetcher, saved, applied *fakeJobIndex) queries.JobQueries {
	if saved == nil {
		saved = &fakeJobIndex{}
	}
	if applied == nil {
		applied = &fakeJobIndex{}
	}
	return queries.NewJobQueries(store, fetcher, saved, applied, nil)
}

func TestJobQueriesSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("storage hit skips the live fetch", func(t *testing.T) {
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{{titled("Go Developer")}},
			count:         1,
		}
		fetcher := &fakeFetcher{}

		q := newJobQueries(store, fetcher, nil, nil)
		result, err := q.Search(ctx, queries.SearchParams{Keywords: "go"})

		require.NoError(t, err)
		assert.Len(t, result.Postings, 1)
		assert.Equal(t, 1, result.TotalCount)
		assert.Empty(t, fetcher.fetchCalls)
	})

	t.Run("empty storage with keywords backfills once", func(t *testing.T) {
		fetched := titled("Rust Developer")
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{nil, {fetched}},
			count:         1,
		}
		fetcher := &fakeFetcher{page: jobboard.Page{Postings: []posting.JobPosting{fetched}, TotalCount: 1}}

		q := newJobQueries(store, fetcher, nil, nil)
		result, err := q.Search(ctx, queries.SearchParams{Keywords: "rust", Location: "Berlin"})

		require.NoError(t, err)
		require.Len(t, fetcher.fetchCalls, 1)
		assert.Equal(t, "rust", fetcher.fetchCalls[0].Keywords)
		assert.Equal(t, "Berlin", fetcher.fetchCalls[0].Location)
		require.Len(t, fetcher.stored, 1)
		assert.Len(t, result.Postings, 1)
		// one read before the backfill, one after
		assert.Len(t, store.searchCalls, 2)
	})

	t.Run("empty storage without keywords never fetches", func(t *testing.T) {
		store := &fakePostingStore{}
		fetcher := &fakeFetcher{}

		q := newJobQueries(store, fetcher, nil, nil)
		result, err := q.Search(ctx, queries.SearchParams{})

		require.NoError(t, err)
		assert.Empty(t, result.Postings)
		assert.Empty(t, fetcher.fetchCalls)
	})

	t.Run("page and limit defaults", func(t *testing.T) {
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{{titled("Go Developer")}},
		}

		q := newJobQueries(store, &fakeFetcher{}, nil, nil)
		result, err := q.Search(ctx, queries.SearchParams{Keywords: "go", Page: -1, Limit: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 20, result.Limit)
		require.Len(t, store.searchCalls, 1)
		assert.Equal(t, 0, store.searchCalls[0].Offset)
		assert.Equal(t, 20, store.searchCalls[0].Limit)
	})
}

func TestJobQueriesMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks candidates best first", func(t *testing.T) {
		best := titled("Senior React Developer")
		other := titled("Warehouse Operative")
		// two candidates are below the backfill minimum, so a second read
		// happens and returns the same set
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{{other, best}, {other, best}},
		}

		q := newJobQueries(store, &fakeFetcher{}, nil, nil)
		matches, err := q.Match(ctx, queries.MatchParams{ResumeKeywords: []string{"react"}})

		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, best.ID, matches[0].ID)
		assert.Equal(t, 30, matches[0].MatchScore)
		assert.Equal(t, 0, matches[1].MatchScore)
	})

	t.Run("no keywords is a validation error", func(t *testing.T) {
		q := newJobQueries(&fakePostingStore{}, &fakeFetcher{}, nil, nil)

		_, err := q.Match(ctx, queries.MatchParams{})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("thin storage triggers a backfill with joined keywords", func(t *testing.T) {
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{manyPostings(3), manyPostings(12)},
		}
		fetcher := &fakeFetcher{page: jobboard.Page{Postings: manyPostings(9), TotalCount: 9}}

		q := newJobQueries(store, fetcher, nil, nil)
		matches, err := q.Match(ctx, queries.MatchParams{ResumeKeywords: []string{"react", "node.js"}})

		require.NoError(t, err)
		require.Len(t, fetcher.fetchCalls, 1)
		assert.Equal(t, "react node.js", fetcher.fetchCalls[0].Keywords)
		assert.Len(t, matches, 12)
	})

	t.Run("plentiful storage skips the backfill", func(t *testing.T) {
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{manyPostings(15)},
		}
		fetcher := &fakeFetcher{}

		q := newJobQueries(store, fetcher, nil, nil)
		_, err := q.Match(ctx, queries.MatchParams{ResumeKeywords: []string{"go"}})

		require.NoError(t, err)
		assert.Empty(t, fetcher.fetchCalls)
	})

	t.Run("results are capped at max results", func(t *testing.T) {
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{manyPostings(30)},
		}

		q := newJobQueries(store, &fakeFetcher{}, nil, nil)
		matches, err := q.Match(ctx, queries.MatchParams{ResumeKeywords: []string{"go"}, MaxResults: 7})

		require.NoError(t, err)
		assert.Len(t, matches, 7)
	})

	t.Run("annotates saved and applied for a known user", func(t *testing.T) {
		savedJob := titled("Go Developer")
		appliedJob := titled("Go Platform Engineer")
		plain := titled("Go Backend Engineer")
		store := &fakePostingStore{
			searchResults: [][]posting.JobPosting{
				{savedJob, appliedJob, plain},
				{savedJob, appliedJob, plain},
			},
		}
		saved := &fakeJobIndex{ids: map[uuid.UUID]bool{savedJob.ID: true}}
		applied := &fakeJobIndex{ids: map[uuid.UUID]bool{appliedJob.ID: true}}
		userID := uuid.New()

		q := newJobQueries(store, &fakeFetcher{}, saved, applied)
		matches, err := q.Match(ctx, queries.MatchParams{
			ResumeKeywords: []string{"go"},
			UserID:         &userID,
		})

		require.NoError(t, err)
		require.Len(t, matches, 3)

		byID := map[uuid.UUID]queries.MatchedPosting{}
		for _, m := range matches {
			byID[m.ID] = m
		}
		assert.True(t, byID[savedJob.ID].Saved)
		assert.False(t, byID[savedJob.ID].Applied)
		assert.True(t, byID[appliedJob.ID].Applied)
		assert.False(t, byID[appliedJob.ID].Saved)
		assert.False(t, byID[plain.ID].Saved)
		assert.False(t, byID[plain.ID].Applied)
	})
}

func TestJobQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		p := titled("Go Developer")
		store := &fakePostingStore{byID: map[uuid.UUID]*posting.JobPosting{p.ID: &p}}

		q := newJobQueries(store, &fakeFetcher{}, nil, nil)
		got, err := q.GetByID(ctx, p.ID)

		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("unknown id maps to the not-found sentinel", func(t *testing.T) {
		q := newJobQueries(&fakePostingStore{}, &fakeFetcher{}, nil, nil)

		_, err := q.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrPostingNotFound)
	})
}

func TestJobQueriesSources(t *testing.T) {
	q := newJobQueries(&fakePostingStore{}, &fakeFetcher{}, nil, nil)

	sources := q.Sources()
	require.Len(t, sources, 3)
	assert.Equal(t, "adzuna", sources[0].ID)
	assert.Equal(t, "reed", sources[1].ID)
	assert.Equal(t, "ziprecruiter", sources[2].ID)
}
