package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"equipment-rental/internal/pkg/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// Sender delivers one message. Implementations should honour ctx where the
// underlying client allows it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the transport configured by MAIL_DRIVER.
func NewSender(cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "", config.MailDriverSimulated:
		return NewSimulatedSender(cfg.SimulatedDelay, logger), nil
	case config.MailDriverSMTP:
		return NewSMTPSender(cfg), nil
	case config.MailDriverSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is required for the sendgrid mail driver")
		}
		return NewSendGridSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
	}
}

// SimulatedSender logs the message and waits to mimic a slow mail service.
type SimulatedSender struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSimulatedSender(delay time.Duration, logger *slog.Logger) *SimulatedSender {
	return &SimulatedSender{delay: delay, logger: logger}
}

func (s *SimulatedSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("📧 Sending email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body))

	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Send dials per message; gomail has no context support so ctx is only
// checked up front.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

type SendGridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewSendGridSender(cfg config.MailConfig) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(msg.ToName, msg.To)
	p := mail.NewPersonalization()
	p.AddTos(to)

	// Plain text only; an empty HTML part is rejected by the API.
	m := mail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = msg.Subject
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/plain", msg.Body))

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", msg.To, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send to %s: status %d: %s", msg.To, resp.StatusCode, resp.Body)
	}
	return nil
}
