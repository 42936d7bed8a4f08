package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"jobradar/internal/domain/posting"
	domresume "jobradar/internal/domain/resume"
	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/infra"
	"jobradar/internal/infra/repository"
	"jobradar/internal/pkg/clock"

	"github.com/google/uuid"
)

type SubscriptionStore interface {
	FindDue(ctx context.Context, frequency domsub.Frequency, now time.Time) ([]domsub.Subscription, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt, nextScheduled time.Time) error
}

type ResumeStore interface {
	FindLatestActive(ctx context.Context, userID uuid.UUID) (*domresume.Record, error)
}

type PostingStore interface {
	Search(ctx context.Context, f repository.SearchFilter) ([]posting.JobPosting, error)
}

var digestTemplate = template.Must(template.New("digest").Parse(`
<h2>Your {{.Frequency}} job digest</h2>
<p>{{len .Postings}} recent postings matched your profile.</p>
<ul>
{{range .Postings}}
  <li>
    <strong>{{.Title}}</strong> at {{.Company}} ({{.Location}})
    {{if .RedirectURL}}<br><a href="{{.RedirectURL}}">View posting</a>{{end}}
  </li>
{{end}}
</ul>
<p><small>To stop receiving these emails, unsubscribe with your email address and token {{.Token}}.</small></p>
`))

type digestData struct {
	Frequency domsub.Frequency
	Postings  []posting.JobPosting
	Token     string
}

// Dispatcher walks due subscriptions and sends digest emails. One failing
// subscriber never blocks the rest.
type Dispatcher struct {
	subs     SubscriptionStore
	resumes  ResumeStore
	postings PostingStore
	sender   Sender
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDispatcher(subs SubscriptionStore, resumes ResumeStore, postings PostingStore, sender Sender, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		subs:     subs,
		resumes:  resumes,
		postings: postings,
		sender:   sender,
		clock:    clk,
		logger:   logger,
	}
}

// DispatchDue processes every due daily and weekly subscription once.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	now := d.clock.Now()
	for _, freq := range []domsub.Frequency{domsub.FrequencyDaily, domsub.FrequencyWeekly} {
		due, err := d.subs.FindDue(ctx, freq, now)
		if err != nil {
			return err
		}
		for i := range due {
			if err := d.dispatchOne(ctx, &due[i], now); err != nil {
				d.logger.Error("digest send failed",
					"subscription_id", due[i].ID,
					"email", due[i].Email,
					"error", err)
			}
		}
	}
	return nil
}

// dispatchOne sends a single digest. Subscribers without an active resume
// or without extracted keywords are skipped silently: no email, no error,
// no counter change.
func (d *Dispatcher) dispatchOne(ctx context.Context, sub *domsub.Subscription, now time.Time) error {
	rec, err := d.resumes.FindLatestActive(ctx, sub.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if len(rec.Keywords) == 0 {
		return nil
	}

	postings, err := d.postings.Search(ctx, repository.SearchFilter{
		Location: sub.Preferences.Location,
		Limit:    sub.Frequency.DigestLimit(),
	})
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		return nil
	}

	var body bytes.Buffer
	err = digestTemplate.Execute(&body, digestData{
		Frequency: sub.Frequency,
		Postings:  postings,
		Token:     sub.UnsubscribeToken,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s job digest: %d new postings", sub.Frequency, len(postings))
	if err := d.sender.Send(sub.Email, subject, body.String()); err != nil {
		return err
	}

	next := now.Add(sub.Frequency.Interval())
	if err := d.subs.MarkSent(ctx, sub.ID, now, next); err != nil {
		return err
	}
	d.logger.Info("digest sent",
		"subscription_id", sub.ID,
		"email", sub.Email,
		"postings", len(postings),
		"next_scheduled", next)
	return nil
}
