package queries

import (
	"context"
	"time"

	domsub "jobradar/internal/domain/subscription"

	"github.com/google/uuid"
)

type SubscriptionReadStore interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]domsub.Subscription, error)
	FindActiveByEmail(ctx context.Context, email string) ([]domsub.Subscription, error)
}

// SubscriptionStatus is the public projection of one subscription; the
// unsubscribe token never leaves the write path.
type SubscriptionStatus struct {
	ID            uuid.UUID          `json:"id"`
	Type          domsub.DigestType  `json:"type"`
	Frequency     domsub.Frequency   `json:"frequency"`
	IsActive      bool               `json:"isActive"`
	LastSent      *time.Time         `json:"lastSent,omitempty"`
	NextScheduled *time.Time         `json:"nextScheduled,omitempty"`
	SentCount     int                `json:"sentCount"`
	Preferences   domsub.Preferences `json:"preferences"`
}

type SubscriptionQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domsub.Subscription, error)
	StatusByEmail(ctx context.Context, email string) ([]SubscriptionStatus, error)
}

type subscriptionQueriesImpl struct {
	subs SubscriptionReadStore
}

func NewSubscriptionQueries(subs SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{subs: subs}
}

func (q *subscriptionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]domsub.Subscription, error) {
	return q.subs.FindActiveByUser(ctx, userID)
}

func (q *subscriptionQueriesImpl) StatusByEmail(ctx context.Context, email string) ([]SubscriptionStatus, error) {
	subs, err := q.subs.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	statuses := make([]SubscriptionStatus, len(subs))
	for i, s := range subs {
		statuses[i] = SubscriptionStatus{
			ID:            s.ID,
			Type:          s.Type,
			Frequency:     s.Frequency,
			IsActive:      s.IsActive,
			LastSent:      s.LastSent,
			NextScheduled: s.NextScheduled,
			SentCount:     s.SentCount,
			Preferences:   s.Preferences,
		}
	}
	return statuses, nil
}
