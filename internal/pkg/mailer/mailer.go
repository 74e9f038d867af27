package mailer

import (
	"context"
	"fmt"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/log"

	"github.com/wneessen/go-mail"
)

type Mailer interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

// New returns an SMTP mailer, or a log-only mailer when SMTP_HOST is unset.
func New(cfg *config.MailerConfig, logger log.Logger) (Mailer, error) {
	if !cfg.Enabled() {
		return &logMailer{log: logger}, nil
	}

	client, err := mail.NewClient(
		cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

type smtpMailer struct {
	client   *mail.Client
	from     string
	fromName string
}

func (m *smtpMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

type logMailer struct {
	log log.Logger
}

func (m *logMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	m.log.Info(ctx, fmt.Sprintf("smtp disabled, mail to %s not sent: %s", to, subject))
	return nil
}
