// Package subscription models standing requests for periodic job digest
// emails.
package subscription

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobradar/internal/domain/posting"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyInstant Frequency = "instant"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyInstant:
		return true
	}
	return false
}

// Interval is the gap advanced onto NextScheduled after a successful send.
func (f Frequency) Interval() time.Duration {
	if f == FrequencyWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// DigestLimit is how many recent postings one digest carries.
func (f Frequency) DigestLimit() int {
	if f == FrequencyWeekly {
		return 10
	}
	return 5
}

type DigestType string

const (
	TypeDailyJobs          DigestType = "daily_jobs"
	TypeWeeklyJobs         DigestType = "weekly_jobs"
	TypeApplicationUpdates DigestType = "application_updates"
	TypeNewMatches         DigestType = "new_matches"
)

// Preferences narrow which postings a digest considers.
type Preferences struct {
	Keywords        []string                `json:"keywords,omitempty"`
	Location        string                  `json:"location,omitempty"`
	ExperienceLevel posting.ExperienceLevel `json:"experienceLevel,omitempty"`
	SalaryMin       *float64                `json:"salaryMin,omitempty"`
	SalaryMax       *float64                `json:"salaryMax,omitempty"`
	SalaryCurrency  string                  `json:"salaryCurrency,omitempty"`
	JobTypes        []string                `json:"jobTypes,omitempty"`
	Industries      []string                `json:"industries,omitempty"`
}

// Subscription is one standing digest request. The unsubscribe token is
// generated once at creation and never regenerated; it is the only valid
// alternate key for unauthenticated unsubscribe. Deleting a subscription
// flips IsActive, the row is never removed.
type Subscription struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"userId"`
	Email            string      `json:"email"`
	Type             DigestType  `json:"type"`
	Frequency        Frequency   `json:"frequency"`
	Preferences      Preferences `json:"preferences"`
	IsActive         bool        `json:"isActive"`
	LastSent         *time.Time  `json:"lastSent,omitempty"`
	NextScheduled    *time.Time  `json:"nextScheduled,omitempty"`
	SentCount        int         `json:"sentCount"`
	UnsubscribeToken string      `json:"-"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// NewUnsubscribeToken returns 32 random bytes hex encoded.
func NewUnsubscribeToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Due reports whether a digest should be sent at now: the next scheduled
// time has passed or was never set.
func (s *Subscription) Due(now time.Time) bool {
	return s.NextScheduled == nil || !s.NextScheduled.After(now)
}
