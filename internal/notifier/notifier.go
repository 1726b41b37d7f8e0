package notifier

import (
	"context"
	"fmt"
	"time"

	"gamecharge/internal/config"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Phone   string
	Email   string
	Subject string
	Body    string
}

// Channel delivers a message over one transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Result reports the outcome of one channel's delivery attempt.
type Result struct {
	Channel string
	Err     error
}

// RenderStatusUpdate builds the customer-facing status update text.
func RenderStatusUpdate(customerName, orderNumber, status string) string {
	return fmt.Sprintf("مرحباً %s،\nتم تحديث حالة طلبك رقم #%s إلى \"%s\"", customerName, orderNumber, status)
}

// RenderOrderCreated builds the order confirmation text.
func RenderOrderCreated(customerName, orderNumber string) string {
	return fmt.Sprintf("مرحباً %s،\nتم استلام طلبك رقم #%s وسيتم معالجته قريباً", customerName, orderNumber)
}

// Manager fans a message out to every configured channel.
type Manager struct {
	channels []Channel
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewManager wires the channel set from configuration.
func NewManager(cfg config.NotifyConfig, logger zerolog.Logger) *Manager {
	channels := []Channel{
		NewWhatsAppChannel(cfg, logger),
		NewSMSChannel(cfg, logger),
		NewEmailChannel(cfg, logger),
	}
	return NewManagerWithChannels(channels, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
}

// NewManagerWithChannels builds a manager over an explicit channel set.
func NewManagerWithChannels(channels []Channel, timeout time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		channels: channels,
		timeout:  timeout,
		logger:   logger.With().Str("component", "notifier").Logger(),
	}
}

// Dispatch sends the message over every channel concurrently and returns one
// Result per channel. A channel failure never short-circuits the others.
func (m *Manager) Dispatch(ctx context.Context, msg Message) []Result {
	results := make([]Result, len(m.channels))

	g, ctx := errgroup.WithContext(ctx)
	for i, ch := range m.channels {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, m.timeout)
			defer cancel()

			err := ch.Send(sendCtx, msg)
			results[i] = Result{Channel: ch.Name(), Err: err}
			if err != nil {
				m.logger.Warn().
					Err(err).
					Str("channel", ch.Name()).
					Msg("notification channel failed")
			}
			// Errors are collected per channel, not propagated, so one
			// failing channel cannot cancel the siblings.
			return nil
		})
	}
	_ = g.Wait()

	return results
}
