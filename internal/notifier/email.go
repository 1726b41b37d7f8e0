package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"gamecharge/internal/config"

	"github.com/rs/zerolog"
)

// EmailChannel delivers messages over SMTP.
type EmailChannel struct {
	host     string
	port     int
	user     string
	password string
	simulate bool
	logger   zerolog.Logger

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailChannel builds the channel from configuration.
func NewEmailChannel(cfg config.NotifyConfig, logger zerolog.Logger) *EmailChannel {
	return &EmailChannel{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		simulate: cfg.Simulate,
		logger:   logger.With().Str("channel", "email").Logger(),
		sendMail: smtp.SendMail,
	}
}

func (c *EmailChannel) Name() string { return "email" }

// Send delivers the message to the recipient's email address. Orders without
// an email on file are skipped silently.
func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	if msg.Email == "" {
		c.logger.Debug().Msg("no recipient email, skipping")
		return nil
	}

	if c.simulate {
		c.logger.Info().
			Str("to", msg.Email).
			Str("subject", msg.Subject).
			Msg("simulated email message")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		c.user, msg.Email, msg.Subject, msg.Body,
	)

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	auth := smtp.PlainAuth("", c.user, c.password, c.host)
	if err := c.sendMail(addr, auth, c.user, []string{msg.Email}, []byte(body)); err != nil {
		return fmt.Errorf("email: failed to send: %w", err)
	}

	c.logger.Debug().Str("to", msg.Email).Msg("email message sent")
	return nil
}
