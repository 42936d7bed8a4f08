package commands

import (
	"context"
	"log/slog"

	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*domsub.Subscription, error)
	Unsubscribe(ctx context.Context, email, token string) error
	UpdatePreferences(ctx context.Context, subscriptionID, actorID uuid.UUID, prefs domsub.Preferences, frequency domsub.Frequency) error
}

type SubscribeRequest struct {
	UserID      uuid.UUID
	Email       string
	Type        domsub.DigestType
	Frequency   domsub.Frequency
	Preferences domsub.Preferences
}

type subscriptionCommandsImpl struct {
	subs   SubscriptionStore
	mailer WelcomeMailer
	logger *slog.Logger
}

func NewSubscriptionCommands(subs SubscriptionStore, mailer WelcomeMailer, logger *slog.Logger) SubscriptionCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriptionCommandsImpl{subs: subs, mailer: mailer, logger: logger}
}

func (uc *subscriptionCommandsImpl) Subscribe(ctx context.Context, req SubscribeRequest) (*domsub.Subscription, error) {
	if req.Email == "" || !req.Frequency.Valid() {
		return nil, errs.ErrDomainValidation
	}
	if req.Type == "" {
		req.Type = domsub.TypeDailyJobs
	}

	existing, err := uc.subs.FindActiveByUserEmailType(ctx, req.UserID, req.Email, req.Type)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrAlreadySubscribed
	}

	token, err := domsub.NewUnsubscribeToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate unsubscribe token")
	}
	sub := &domsub.Subscription{
		UserID:           req.UserID,
		Email:            req.Email,
		Type:             req.Type,
		Frequency:        req.Frequency,
		Preferences:      req.Preferences,
		IsActive:         true,
		UnsubscribeToken: token,
	}
	id, err := uc.subs.Create(ctx, sub)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrAlreadySubscribed
		}
		return nil, err
	}
	sub.ID = id

	// A failed welcome mail never fails the subscribe itself.
	if err := uc.mailer.SendWelcome(req.Email, req.Frequency); err != nil {
		uc.logger.Warn("failed to send welcome email", "email", req.Email, "error", err)
	}
	return sub, nil
}

// Unsubscribe accepts the email alone or email plus unsubscribe token.
func (uc *subscriptionCommandsImpl) Unsubscribe(ctx context.Context, email, token string) error {
	if email == "" {
		return errs.ErrDomainValidation
	}
	sub, err := uc.subs.FindByEmail(ctx, email, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSubscriptionNotFound
		}
		return err
	}
	return uc.subs.Deactivate(ctx, sub.ID)
}

func (uc *subscriptionCommandsImpl) UpdatePreferences(ctx context.Context, subscriptionID, actorID uuid.UUID, prefs domsub.Preferences, frequency domsub.Frequency) error {
	if !frequency.Valid() {
		return errs.ErrDomainValidation
	}
	sub, err := uc.subs.FindByID(ctx, subscriptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSubscriptionNotFound
		}
		return err
	}
	if sub.UserID != actorID {
		return errs.ErrSubscriptionNotFound
	}
	return uc.subs.UpdatePreferences(ctx, subscriptionID, prefs, frequency)
}
