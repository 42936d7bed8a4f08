package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

const subscriptionColumns = `
	id, user_id, email, type, frequency, preferences, is_active,
	last_sent, next_scheduled, sent_count, unsubscribe_token, created_at`

func (r *SubscriptionRepository) Create(ctx context.Context, s *domsub.Subscription) (uuid.UUID, error) {
	prefs, err := json.Marshal(s.Preferences)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode preferences", err)
	}
	var id uuid.UUID
	err = r.pool.QueryRow(ctx,
		`INSERT INTO subscriptions (
			user_id, email, type, frequency, preferences,
			is_active, next_scheduled, unsubscribe_token
		) VALUES ($1, $2, $3, $4, $5, true, $6, $7)
		RETURNING id`,
		s.UserID, s.Email, string(s.Type), string(s.Frequency), prefs,
		s.NextScheduled, s.UnsubscribeToken,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domsub.Subscription, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id)
	s, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription by id", err)
	}
	return s, nil
}

// FindActiveByUserEmailType detects duplicate subscribe attempts.
func (r *SubscriptionRepository) FindActiveByUserEmailType(ctx context.Context, userID uuid.UUID, email string, typ domsub.DigestType) (*domsub.Subscription, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE user_id = $1 AND email = $2 AND type = $3 AND is_active = true`,
		userID, email, string(typ))
	s, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return s, nil
}

// FindByEmail returns the newest subscription for the address, optionally
// requiring the unsubscribe token as an alternate key.
func (r *SubscriptionRepository) FindByEmail(ctx context.Context, email, token string) (*domsub.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE email = $1`
	args := []any{email}
	if token != "" {
		query += ` AND unsubscribe_token = $2`
		args = append(args, token)
	}
	query += ` ORDER BY created_at DESC LIMIT 1`

	row := r.pool.QueryRow(ctx, query, args...)
	s, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription by email", err)
	}
	return s, nil
}

func (r *SubscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]domsub.Subscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE user_id = $1 AND is_active = true
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions by user", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *SubscriptionRepository) FindActiveByEmail(ctx context.Context, email string) ([]domsub.Subscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE email = $1 AND is_active = true`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions by email", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

// FindDue returns active subscriptions of the given frequency whose next
// scheduled time has passed or was never set.
func (r *SubscriptionRepository) FindDue(ctx context.Context, frequency domsub.Frequency, now time.Time) ([]domsub.Subscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE is_active = true AND frequency = $1
		   AND (next_scheduled IS NULL OR next_scheduled <= $2)`,
		string(frequency), now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due subscriptions", err)
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *SubscriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subscriptions SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate subscription", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdatePreferences overwrites the preference block and optionally the
// frequency. The unsubscribe token is never touched.
func (r *SubscriptionRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs domsub.Preferences, frequency domsub.Frequency) error {
	encoded, err := json.Marshal(prefs)
	if err != nil {
		return infra.WrapRepoErr("failed to encode preferences", err)
	}
	query := `UPDATE subscriptions SET preferences = $2, updated_at = now()`
	args := []any{id, encoded}
	if frequency != "" {
		query += `, frequency = $3`
		args = append(args, string(frequency))
	}
	query += ` WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update preferences", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkSent records a successful digest delivery: stamps last_sent,
// advances next_scheduled and increments the send counter.
func (r *SubscriptionRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt, nextScheduled time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subscriptions
		 SET last_sent = $2, next_scheduled = $3, sent_count = sent_count + 1, updated_at = now()
		 WHERE id = $1`,
		id, sentAt, nextScheduled)
	if err != nil {
		return infra.WrapRepoErr("failed to mark subscription sent", err)
	}
	return nil
}

func collectSubscriptions(rows pgx.Rows) ([]domsub.Subscription, error) {
	var result []domsub.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscription row", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("subscription rows iteration failed", err)
	}
	return result, nil
}

func scanSubscription(row pgx.Row) (*domsub.Subscription, error) {
	var (
		s             domsub.Subscription
		typ           string
		frequency     string
		prefs         []byte
		lastSent      pgtype.Timestamptz
		nextScheduled pgtype.Timestamptz
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.Email, &typ, &frequency, &prefs, &s.IsActive,
		&lastSent, &nextScheduled, &s.SentCount, &s.UnsubscribeToken, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(prefs, &s.Preferences); err != nil {
		return nil, err
	}
	s.Type = domsub.DigestType(typ)
	s.Frequency = domsub.Frequency(frequency)
	if lastSent.Valid {
		s.LastSent = &lastSent.Time
	}
	if nextScheduled.Valid {
		s.NextScheduled = &nextScheduled.Time
	}
	return &s, nil
}
