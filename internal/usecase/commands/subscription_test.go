//go:build unit

package commands_test

import (
	"context"
	"testing"

	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/errs"
	"jobradar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionStore struct {
	active      map[string]*domsub.Subscription // keyed by email + type
	byEmail     *domsub.Subscription
	byID        map[uuid.UUID]*domsub.Subscription
	created     *domsub.Subscription
	createErr   error
	deactivated []uuid.UUID
	updated     []uuid.UUID
}

func (s *fakeSubscriptionStore) Create(_ context.Context, sub *domsub.Subscription) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.created = sub
	return uuid.New(), nil
}

func (s *fakeSubscriptionStore) FindByID(_ context.Context, id uuid.UUID) (*domsub.Subscription, error) {
	sub, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return sub, nil
}

func (s *fakeSubscriptionStore) FindActiveByUserEmailType(_ context.Context, _ uuid.UUID, email string, typ domsub.DigestType) (*domsub.Subscription, error) {
	sub, ok := s.active[email+"/"+string(typ)]
	if !ok {
		return nil, infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return sub, nil
}

func (s *fakeSubscriptionStore) FindByEmail(_ context.Context, email, _ string) (*domsub.Subscription, error) {
	if s.byEmail == nil || s.byEmail.Email != email {
		return nil, infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return s.byEmail, nil
}

func (s *fakeSubscriptionStore) Deactivate(_ context.Context, id uuid.UUID) error {
	s.deactivated = append(s.deactivated, id)
	return nil
}

func (s *fakeSubscriptionStore) UpdatePreferences(_ context.Context, id uuid.UUID, _ domsub.Preferences, _ domsub.Frequency) error {
	s.updated = append(s.updated, id)
	return nil
}

type fakeWelcomeMailer struct {
	sent []string
	err  error
}

func (m *fakeWelcomeMailer) SendWelcome(email string, _ domsub.Frequency) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("creates subscription and sends welcome mail", func(t *testing.T) {
		store := &fakeSubscriptionStore{}
		mailer := &fakeWelcomeMailer{}
		uc := commands.NewSubscriptionCommands(store, mailer, nil)

		sub, err := uc.Subscribe(ctx, commands.SubscribeRequest{
			UserID:    uuid.New(),
			Email:     "dev@example.test",
			Frequency: domsub.FrequencyDaily,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, sub.ID)
		assert.Equal(t, domsub.TypeDailyJobs, sub.Type)
		assert.True(t, sub.IsActive)
		assert.NotEmpty(t, sub.UnsubscribeToken)
		assert.Equal(t, []string{"dev@example.test"}, mailer.sent)
	})

	t.Run("missing email is a validation error", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(&fakeSubscriptionStore{}, &fakeWelcomeMailer{}, nil)

		_, err := uc.Subscribe(ctx, commands.SubscribeRequest{Frequency: domsub.FrequencyDaily})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("invalid frequency is a validation error", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(&fakeSubscriptionStore{}, &fakeWelcomeMailer{}, nil)

		_, err := uc.Subscribe(ctx, commands.SubscribeRequest{
			Email:     "dev@example.test",
			Frequency: "hourly",
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("existing active subscription is rejected", func(t *testing.T) {
		store := &fakeSubscriptionStore{active: map[string]*domsub.Subscription{
			"dev@example.test/daily_jobs": {ID: uuid.New()},
		}}
		uc := commands.NewSubscriptionCommands(store, &fakeWelcomeMailer{}, nil)

		_, err := uc.Subscribe(ctx, commands.SubscribeRequest{
			Email:     "dev@example.test",
			Frequency: domsub.FrequencyDaily,
		})
		assert.ErrorIs(t, err, errs.ErrAlreadySubscribed)
	})

	t.Run("duplicate key on create maps to already subscribed", func(t *testing.T) {
		store := &fakeSubscriptionStore{
			createErr: infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey),
		}
		uc := commands.NewSubscriptionCommands(store, &fakeWelcomeMailer{}, nil)

		_, err := uc.Subscribe(ctx, commands.SubscribeRequest{
			Email:     "dev@example.test",
			Frequency: domsub.FrequencyDaily,
		})
		assert.ErrorIs(t, err, errs.ErrAlreadySubscribed)
	})

	t.Run("failed welcome mail never fails the subscribe", func(t *testing.T) {
		store := &fakeSubscriptionStore{}
		mailer := &fakeWelcomeMailer{err: errs.New("smtp refused")}
		uc := commands.NewSubscriptionCommands(store, mailer, nil)

		sub, err := uc.Subscribe(ctx, commands.SubscribeRequest{
			Email:     "dev@example.test",
			Frequency: domsub.FrequencyWeekly,
		})

		require.NoError(t, err)
		assert.NotNil(t, sub)
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates by email", func(t *testing.T) {
		subID := uuid.New()
		store := &fakeSubscriptionStore{byEmail: &domsub.Subscription{ID: subID, Email: "dev@example.test"}}
		uc := commands.NewSubscriptionCommands(store, &fakeWelcomeMailer{}, nil)

		require.NoError(t, uc.Unsubscribe(ctx, "dev@example.test", ""))
		assert.Equal(t, []uuid.UUID{subID}, store.deactivated)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(&fakeSubscriptionStore{}, &fakeWelcomeMailer{}, nil)

		err := uc.Unsubscribe(ctx, "ghost@example.test", "")
		assert.ErrorIs(t, err, errs.ErrSubscriptionNotFound)
	})

	t.Run("missing email is a validation error", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(&fakeSubscriptionStore{}, &fakeWelcomeMailer{}, nil)

		err := uc.Unsubscribe(ctx, "", "token")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	subID := uuid.New()

	newStore := func() *fakeSubscriptionStore {
		return &fakeSubscriptionStore{byID: map[uuid.UUID]*domsub.Subscription{
			subID: {ID: subID, UserID: owner},
		}}
	}

	t.Run("owner can update", func(t *testing.T) {
		store := newStore()
		uc := commands.NewSubscriptionCommands(store, &fakeWelcomeMailer{}, nil)

		err := uc.UpdatePreferences(ctx, subID, owner, domsub.Preferences{Location: "London"}, domsub.FrequencyWeekly)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{subID}, store.updated)
	})

	t.Run("foreign subscription reads as not found", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(newStore(), &fakeWelcomeMailer{}, nil)

		err := uc.UpdatePreferences(ctx, subID, uuid.New(), domsub.Preferences{}, domsub.FrequencyDaily)
		assert.ErrorIs(t, err, errs.ErrSubscriptionNotFound)
	})

	t.Run("invalid frequency is a validation error", func(t *testing.T) {
		uc := commands.NewSubscriptionCommands(newStore(), &fakeWelcomeMailer{}, nil)

		err := uc.UpdatePreferences(ctx, subID, owner, domsub.Preferences{}, "yearly")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
