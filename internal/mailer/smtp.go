package mailer

import (
	"context"

	"github.com/rs/zerolog"
	mail "gopkg.in/mail.v2"

	"github.com/noah-isme/portfolio-go-api/internal/config"
)

// SMTP delivers messages through an SMTP relay using gomail.
//
// The dialer is built once from static configuration and reused across
// requests; it holds no mutable state.
type SMTP struct {
	dialer *mail.Dialer
	logger zerolog.Logger
}

// NewSMTP constructs an SMTP mailer from the server-side connection settings.
func NewSMTP(cfg config.Config, logger zerolog.Logger) *SMTP {
	dialer := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	dialer.SSL = cfg.SMTPTLS && cfg.SMTPPort == 465

	return &SMTP{
		dialer: dialer,
		logger: logger.With().Str("component", "smtp_mailer").Logger(),
	}
}

// Send performs exactly one delivery attempt for the given message.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(buildMail(msg)); err != nil {
		return err
	}

	s.logger.Info().Str("to", msg.To).Msg("message delivered")
	return nil
}

// buildMail maps a Message onto the gomail representation. The Reply-To
// header is only set when the submitter supplied an address.
func buildMail(msg Message) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	return m
}
