//go:build unit

package notify_test

import (
	"context"
	"testing"
	"time"

	"jobradar/internal/domain/posting"
	domresume "jobradar/internal/domain/resume"
	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/infra"
	"jobradar/internal/infra/repository"
	"jobradar/internal/notify"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubStore struct {
	daily  []domsub.Subscription
	weekly []domsub.Subscription

	marked []markCall
}

type markCall struct {
	id            uuid.UUID
	sentAt        time.Time
	nextScheduled time.Time
}

func (s *stubSubStore) FindDue(_ context.Context, frequency domsub.Frequency, _ time.Time) ([]domsub.Subscription, error) {
	if frequency == domsub.FrequencyWeekly {
		return s.weekly, nil
	}
	return s.daily, nil
}

func (s *stubSubStore) MarkSent(_ context.Context, id uuid.UUID, sentAt, nextScheduled time.Time) error {
	s.marked = append(s.marked, markCall{id: id, sentAt: sentAt, nextScheduled: nextScheduled})
	return nil
}

type stubResumeStore struct {
	records map[uuid.UUID]*domresume.Record
}

func (s *stubResumeStore) FindLatestActive(_ context.Context, userID uuid.UUID) (*domresume.Record, error) {
	rec, ok := s.records[userID]
	if !ok {
		return nil, infra.WrapRepoErr("resume not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

type stubPostingStore struct {
	postings []posting.JobPosting
	filters  []repository.SearchFilter
	err      error
}

func (s *stubPostingStore) Search(_ context.Context, f repository.SearchFilter) ([]posting.JobPosting, error) {
	s.filters = append(s.filters, f)
	if s.err != nil {
		return nil, s.err
	}
	return s.postings, nil
}

type stubSender struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (s *stubSender) Send(to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func dailySubscription(userID uuid.UUID, email string) domsub.Subscription {
	return domsub.Subscription{
		ID:               uuid.New(),
		UserID:           userID,
		Email:            email,
		Type:             domsub.TypeDailyJobs,
		Frequency:        domsub.FrequencyDaily,
		IsActive:         true,
		UnsubscribeToken: "tok-" + email,
	}
}

func activeResume(userID uuid.UUID, keywords ...string) *domresume.Record {
	return &domresume.Record{
		ID:       uuid.New(),
		UserID:   userID,
		Keywords: keywords,
		IsActive: true,
	}
}

func somePostings(n int) []posting.JobPosting {
	out := make([]posting.JobPosting, n)
	for i := range out {
		out[i] = posting.JobPosting{
			ID:          uuid.New(),
			ExternalID:  "p",
			Title:       "Software Engineer",
			Company:     "Acme",
			Location:    "London",
			RedirectURL: "https://example.test/p",
			IsActive:    true,
		}
	}
	return out
}

func TestDispatchDue(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	t.Run("sends digest and advances schedule", func(t *testing.T) {
		userID := uuid.New()
		sub := dailySubscription(userID, "dev@example.test")

		subs := &stubSubStore{daily: []domsub.Subscription{sub}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{
			userID: activeResume(userID, "react", "node.js"),
		}}
		postings := &stubPostingStore{postings: somePostings(3)}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, resumes, postings, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "dev@example.test", sender.sent[0].to)
		assert.Contains(t, sender.sent[0].subject, "daily")
		assert.Contains(t, sender.sent[0].body, "Software Engineer")
		assert.Contains(t, sender.sent[0].body, sub.UnsubscribeToken)

		require.Len(t, subs.marked, 1)
		assert.Equal(t, sub.ID, subs.marked[0].id)
		assert.Equal(t, now, subs.marked[0].sentAt)
		assert.Equal(t, now.Add(24*time.Hour), subs.marked[0].nextScheduled)

		require.Len(t, postings.filters, 1)
		assert.Equal(t, 5, postings.filters[0].Limit)
	})

	t.Run("subscriber without a resume is skipped silently", func(t *testing.T) {
		sub := dailySubscription(uuid.New(), "new@example.test")

		subs := &stubSubStore{daily: []domsub.Subscription{sub}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{}}
		postings := &stubPostingStore{postings: somePostings(3)}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, resumes, postings, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		assert.Empty(t, sender.sent)
		assert.Empty(t, subs.marked)
		assert.Empty(t, postings.filters)
	})

	t.Run("resume without keywords is skipped", func(t *testing.T) {
		userID := uuid.New()
		sub := dailySubscription(userID, "blank@example.test")

		subs := &stubSubStore{daily: []domsub.Subscription{sub}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{
			userID: activeResume(userID),
		}}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, resumes, &stubPostingStore{}, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		assert.Empty(t, sender.sent)
		assert.Empty(t, subs.marked)
	})

	t.Run("no matching postings is skipped", func(t *testing.T) {
		userID := uuid.New()
		sub := dailySubscription(userID, "quiet@example.test")

		subs := &stubSubStore{daily: []domsub.Subscription{sub}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{
			userID: activeResume(userID, "cobol"),
		}}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, resumes, &stubPostingStore{}, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		assert.Empty(t, sender.sent)
		assert.Empty(t, subs.marked)
	})

	t.Run("one failing subscriber never blocks the rest", func(t *testing.T) {
		brokenUser := uuid.New()
		okUser := uuid.New()
		broken := dailySubscription(brokenUser, "broken@example.test")
		ok := dailySubscription(okUser, "ok@example.test")

		subs := &stubSubStore{daily: []domsub.Subscription{broken, ok}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{
			okUser: activeResume(okUser, "react"),
		}}
		// the broken subscriber fails at the resume lookup with a real error
		brokenResumes := &failingResumeStore{inner: resumes, failFor: brokenUser}

		postings := &stubPostingStore{postings: somePostings(1)}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, brokenResumes, postings, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "ok@example.test", sender.sent[0].to)
		require.Len(t, subs.marked, 1)
		assert.Equal(t, ok.ID, subs.marked[0].id)
	})

	t.Run("weekly digests use the larger limit and interval", func(t *testing.T) {
		userID := uuid.New()
		sub := dailySubscription(userID, "weekly@example.test")
		sub.Frequency = domsub.FrequencyWeekly
		sub.Type = domsub.TypeWeeklyJobs

		subs := &stubSubStore{weekly: []domsub.Subscription{sub}}
		resumes := &stubResumeStore{records: map[uuid.UUID]*domresume.Record{
			userID: activeResume(userID, "python"),
		}}
		postings := &stubPostingStore{postings: somePostings(2)}
		sender := &stubSender{}

		d := notify.NewDispatcher(subs, resumes, postings, sender, clock.NewMockClock(now), nil)
		require.NoError(t, d.DispatchDue(context.Background()))

		require.Len(t, postings.filters, 1)
		assert.Equal(t, 10, postings.filters[0].Limit)
		require.Len(t, subs.marked, 1)
		assert.Equal(t, now.Add(7*24*time.Hour), subs.marked[0].nextScheduled)
	})
}

type failingResumeStore struct {
	inner   *stubResumeStore
	failFor uuid.UUID
}

func (s *failingResumeStore) FindLatestActive(ctx context.Context, userID uuid.UUID) (*domresume.Record, error) {
	if userID == s.failFor {
		return nil, errs.New("resume store unavailable")
	}
	return s.inner.FindLatestActive(ctx, userID)
}
