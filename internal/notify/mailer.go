// Package notify renders and sends digest and welcome emails for active
// subscriptions.
package notify

import (
	"fmt"

	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/pkg/config"
	"jobradar/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// Sender delivers one rendered email. The SMTP transport stays behind this
// boundary so the dispatcher can be tested without a mail server.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender delivers through gomail. Unconfigured SMTP (empty user) turns
// every send into a logged no-op upstream, not an error here.
type SMTPSender struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}

// SendWelcome confirms a new subscription.
func (d *Dispatcher) SendWelcome(email string, frequency domsub.Frequency) error {
	body := fmt.Sprintf(
		`<h2>Welcome to JobRadar</h2>
<p>Your %s job digest subscription is active. The first digest arrives with the next scheduled send.</p>
<p>You can unsubscribe at any time from any digest email.</p>`,
		frequency,
	)
	return d.sender.Send(email, "Your job digest subscription is active", body)
}
