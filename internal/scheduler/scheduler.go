// Package scheduler drives the periodic job board refresh, the stale
// posting cleanup and the digest dispatch on cron triggers.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"jobradar/internal/domain/posting"
	"jobradar/internal/jobboard"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// popularKeywords is the rotation pool for scheduled refresh cycles. Each
// cycle takes at most KeywordsPerRun of them.
var popularKeywords = []string{
	"software engineer",
	"web developer",
	"data analyst",
	"project manager",
	"marketing",
	"sales",
	"customer service",
	"accountant",
	"nurse",
	"teacher",
	"designer",
	"devops",
	"product manager",
	"business analyst",
	"data scientist",
	"frontend developer",
	"backend developer",
}

// Fetcher is the aggregator surface the refresh cycle drives.
type Fetcher interface {
	FetchAll(ctx context.Context, q jobboard.Query) jobboard.Page
	StoreJobs(ctx context.Context, postings []posting.JobPosting) (int, error)
}

// PostingCleaner deactivates postings older than a cutoff.
type PostingCleaner interface {
	DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// DigestDispatcher sends due digest emails; wired to internal/notify.
type DigestDispatcher interface {
	DispatchDue(ctx context.Context) error
}

// Status is the public projection of scheduler state. NextRunEstimate is a
// naive lastRunAt+interval projection, not a cron lookahead.
type Status struct {
	IsRunning       bool       `json:"isRunning"`
	LastRunAt       *time.Time `json:"lastRunAt,omitempty"`
	NextRunEstimate *time.Time `json:"nextRunEstimate,omitempty"`
}

// Scheduler owns its run state: the running flag and lastRunAt are mutated
// only by its own start/complete transitions, and read through Status().
type Scheduler struct {
	cfg        config.SchedulerConfig
	fetcher    Fetcher
	cleaner    PostingCleaner
	dispatcher DigestDispatcher
	clock      clock.Clock
	logger     *slog.Logger

	cron *cron.Cron

	mu        sync.Mutex
	isRunning bool
	lastRunAt *time.Time
	// next rotation window start into popularKeywords
	keywordOffset int
}

func New(cfg config.SchedulerConfig, fetcher Fetcher, cleaner PostingCleaner, dispatcher DigestDispatcher, clk clock.Clock, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cfg:        cfg,
		fetcher:    fetcher,
		cleaner:    cleaner,
		dispatcher: dispatcher,
		clock:      clk,
		logger:     logger,
	}
}

// Start registers the cron entries and kicks one refresh shortly after
// process start.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc("@every "+s.cfg.RefreshInterval.String(), func() {
		s.RunRefresh(context.Background())
	}); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.CleanupSpec, func() {
		s.RunCleanup(context.Background())
	}); err != nil {
		return err
	}
	if s.dispatcher != nil {
		if _, err := s.cron.AddFunc(s.cfg.DigestSpec, func() {
			if err := s.dispatcher.DispatchDue(context.Background()); err != nil {
				s.logger.Error("digest dispatch failed", "error", err)
			}
		}); err != nil {
			return err
		}
	}
	s.cron.Start()

	go func() {
		select {
		case <-time.After(s.cfg.StartupDelay):
			s.RunRefresh(context.Background())
		case <-ctx.Done():
		}
	}()

	s.logger.Info("scheduler started",
		"refresh_interval", s.cfg.RefreshInterval,
		"cleanup_spec", s.cfg.CleanupSpec,
		"digest_spec", s.cfg.DigestSpec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.logger.Info("scheduler stopped")
}

// RunRefresh executes one refresh cycle. A trigger that arrives while a
// cycle is running is a no-op, never a second concurrent cycle.
func (s *Scheduler) RunRefresh(ctx context.Context) {
	if !s.beginRun() {
		s.logger.Info("refresh already running, skipping trigger")
		return
	}
	defer s.completeRun()

	keywords := s.nextKeywordBatch()
	s.logger.Info("refresh cycle started", "keywords", keywords)

	for i, kw := range keywords {
		if i > 0 {
			s.clock.Sleep(s.cfg.KeywordPause)
		}
		stored, err := s.fetchAndStore(ctx, kw, "")
		if err != nil {
			s.logger.Error("keyword refresh failed", "keyword", kw, "error", err)
			continue
		}
		s.logger.Info("keyword refreshed", "keyword", kw, "stored", stored)
	}
	s.logger.Info("refresh cycle complete")
}

// RunCleanup soft-deletes postings older than the configured age. Reruns
// only touch newly qualifying rows.
func (s *Scheduler) RunCleanup(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.cfg.MaxPostingAge)
	n, err := s.cleaner.DeactivateOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("cleanup failed", "error", err)
		return
	}
	s.logger.Info("cleanup complete", "deactivated", n, "cutoff", cutoff)
}

// TriggerFetch runs a fetch-and-store for an explicit keyword list
// synchronously and returns the total stored. It bypasses the refresh
// mutual exclusion: manual fetches and scheduled refreshes may overlap,
// which is safe because the upsert is idempotent per external id.
func (s *Scheduler) TriggerFetch(ctx context.Context, keywords []string, location string) (int, error) {
	total := 0
	for i, kw := range keywords {
		if i > 0 {
			s.clock.Sleep(s.cfg.KeywordPause)
		}
		stored, err := s.fetchAndStore(ctx, kw, location)
		if err != nil {
			s.logger.Error("manual fetch failed", "keyword", kw, "error", err)
			continue
		}
		total += stored
	}
	return total, nil
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{IsRunning: s.isRunning}
	if s.lastRunAt != nil {
		last := *s.lastRunAt
		next := last.Add(s.cfg.RefreshInterval)
		st.LastRunAt = &last
		st.NextRunEstimate = &next
	}
	return st
}

func (s *Scheduler) fetchAndStore(ctx context.Context, keywords, location string) (int, error) {
	page := s.fetcher.FetchAll(ctx, jobboard.Query{Keywords: keywords, Location: location, Page: 1})
	if len(page.Postings) == 0 {
		return 0, nil
	}
	return s.fetcher.StoreJobs(ctx, page.Postings)
}

func (s *Scheduler) beginRun() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return false
	}
	s.isRunning = true
	return true
}

func (s *Scheduler) completeRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isRunning = false
	now := s.clock.Now()
	s.lastRunAt = &now
}

// nextKeywordBatch returns the keywords for one cycle: the first
// KeywordsPerRun of the pool, or a sliding window over it when rotation is
// enabled.
func (s *Scheduler) nextKeywordBatch() []string {
	n := s.cfg.KeywordsPerRun
	if n <= 0 || n > len(popularKeywords) {
		n = len(popularKeywords)
	}
	if !s.cfg.RotateKeywords {
		return popularKeywords[:n]
	}

	s.mu.Lock()
	offset := s.keywordOffset
	s.keywordOffset = (s.keywordOffset + n) % len(popularKeywords)
	s.mu.Unlock()

	batch := make([]string, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, popularKeywords[(offset+i)%len(popularKeywords)])
	}
	return batch
}
