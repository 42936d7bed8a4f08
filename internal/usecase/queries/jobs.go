package queries

import (
	"context"
	"log/slog"
	"strings"

	"jobradar/internal/domain/posting"
	"jobradar/internal/infra"
	"jobradar/internal/infra/repository"
	"jobradar/internal/jobboard"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultSearchLimit   = 20
	defaultMatchResults  = 20
	matchCandidateLimit  = 100
	matchBackfillMinimum = 10
)

// PostingReadStore is the read side of posting storage.
type PostingReadStore interface {
	Search(ctx context.Context, f repository.SearchFilter) ([]posting.JobPosting, error)
	CountSearch(ctx context.Context, f repository.SearchFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*posting.JobPosting, error)
}

// LiveFetcher triggers an on-demand job board fetch when storage comes up
// short.
type LiveFetcher interface {
	FetchAll(ctx context.Context, q jobboard.Query) jobboard.Page
	StoreJobs(ctx context.Context, postings []posting.JobPosting) (int, error)
}

// UserJobIndex annotates match results with the caller's saved and applied
// job ids.
type UserJobIndex interface {
	JobIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
}

type SearchParams struct {
	Keywords string
	Location string
	Source   posting.Source
	Page     int
	Limit    int
}

type SearchResult struct {
	Postings   []posting.JobPosting
	TotalCount int
	Page       int
	Limit      int
}

type MatchParams struct {
	ResumeKeywords  []string
	Location        string
	ExperienceLevel posting.ExperienceLevel
	MaxResults      int
	UserID          *uuid.UUID
}

type MatchedPosting struct {
	posting.ScoredPosting
	Saved   bool `json:"saved"`
	Applied bool `json:"applied"`
}

type SourceInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type JobQueries interface {
	Search(ctx context.Context, p SearchParams) (*SearchResult, error)
	Match(ctx context.Context, p MatchParams) ([]MatchedPosting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*posting.JobPosting, error)
	Sources() []SourceInfo
}

type jobQueriesImpl struct {
	postings PostingReadStore
	fetcher  LiveFetcher
	saved    UserJobIndex
	applied  UserJobIndex
	logger   *slog.Logger
}

func NewJobQueries(postings PostingReadStore, fetcher LiveFetcher, saved, applied UserJobIndex, logger *slog.Logger) JobQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobQueriesImpl{postings: postings, fetcher: fetcher, saved: saved, applied: applied, logger: logger}
}

// Search reads storage first. When no stored posting matches and keywords
// were given, one live fetch backfills storage before a single re-read.
func (q *jobQueriesImpl) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultSearchLimit
	}
	filter := repository.SearchFilter{
		Keywords: p.Keywords,
		Location: p.Location,
		Source:   p.Source,
		Limit:    p.Limit,
		Offset:   (p.Page - 1) * p.Limit,
	}

	postings, err := q.postings.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 && p.Keywords != "" {
		q.backfill(ctx, p.Keywords, p.Location)
		if postings, err = q.postings.Search(ctx, filter); err != nil {
			return nil, err
		}
	}

	total, err := q.postings.CountSearch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Postings: postings, TotalCount: total, Page: p.Page, Limit: p.Limit}, nil
}

// Match ranks stored postings against resume keywords. Fewer than ten
// candidates triggers one live fetch before the rank step runs.
func (q *jobQueriesImpl) Match(ctx context.Context, p MatchParams) ([]MatchedPosting, error) {
	if len(p.ResumeKeywords) == 0 {
		return nil, errs.ErrDomainValidation
	}
	if p.MaxResults <= 0 {
		p.MaxResults = defaultMatchResults
	}
	filter := repository.SearchFilter{
		Location:        p.Location,
		ExperienceLevel: p.ExperienceLevel,
		Limit:           matchCandidateLimit,
	}

	candidates, err := q.postings.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(candidates) < matchBackfillMinimum {
		q.backfill(ctx, strings.Join(p.ResumeKeywords, " "), p.Location)
		if candidates, err = q.postings.Search(ctx, filter); err != nil {
			return nil, err
		}
	}

	ranked := posting.RankByScore(candidates, p.ResumeKeywords)
	if len(ranked) > p.MaxResults {
		ranked = ranked[:p.MaxResults]
	}

	var savedIDs, appliedIDs map[uuid.UUID]bool
	if p.UserID != nil {
		if savedIDs, err = q.saved.JobIDsByUser(ctx, *p.UserID); err != nil {
			return nil, err
		}
		if appliedIDs, err = q.applied.JobIDsByUser(ctx, *p.UserID); err != nil {
			return nil, err
		}
	}

	results := make([]MatchedPosting, len(ranked))
	for i, sp := range ranked {
		results[i] = MatchedPosting{
			ScoredPosting: sp,
			Saved:         savedIDs[sp.ID],
			Applied:       appliedIDs[sp.ID],
		}
	}
	return results, nil
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*posting.JobPosting, error) {
	p, err := q.postings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPostingNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *jobQueriesImpl) Sources() []SourceInfo {
	return []SourceInfo{
		{ID: string(posting.SourceAdzuna), Name: "Adzuna", Country: "GB"},
		{ID: string(posting.SourceReed), Name: "Reed", Country: "GB"},
		{ID: string(posting.SourceZipRecruiter), Name: "ZipRecruiter", Country: "US"},
	}
}

// backfill runs one fetch-and-store pass. Its failures only log: the read
// path degrades to whatever storage already holds.
func (q *jobQueriesImpl) backfill(ctx context.Context, keywords, location string) {
	page := q.fetcher.FetchAll(ctx, jobboard.Query{Keywords: keywords, Location: location, Page: 1})
	if len(page.Postings) == 0 {
		return
	}
	if _, err := q.fetcher.StoreJobs(ctx, page.Postings); err != nil {
		q.logger.Warn("live fetch store failed", "keywords", keywords, "error", err)
	}
}
