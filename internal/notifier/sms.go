package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gamecharge/internal/config"

	"github.com/rs/zerolog"
)

// SMSChannel delivers messages through an HTTP SMS gateway.
type SMSChannel struct {
	gatewayURL string
	apiKey     string
	sender     string
	simulate   bool
	client     *http.Client
	logger     zerolog.Logger
}

// NewSMSChannel builds the channel from configuration.
func NewSMSChannel(cfg config.NotifyConfig, logger zerolog.Logger) *SMSChannel {
	return &SMSChannel{
		gatewayURL: cfg.SMSGatewayURL,
		apiKey:     cfg.SMSAPIKey,
		sender:     cfg.SMSSender,
		simulate:   cfg.Simulate,
		client:     &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("channel", "sms").Logger(),
	}
}

// SetGatewayURL overrides the gateway endpoint. Used in tests.
func (c *SMSChannel) SetGatewayURL(url string) {
	c.gatewayURL = url
}

func (c *SMSChannel) Name() string { return "sms" }

// Send posts the message to the gateway.
func (c *SMSChannel) Send(ctx context.Context, msg Message) error {
	if msg.Phone == "" {
		return fmt.Errorf("sms: recipient phone is empty")
	}

	if c.simulate {
		c.logger.Info().
			Str("to", msg.Phone).
			Str("body", msg.Body).
			Msg("simulated SMS message")
		return nil
	}

	payload := map[string]string{
		"sender":  c.sender,
		"to":      msg.Phone,
		"message": msg.Body,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sms: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sms: unexpected status %d: %s", resp.StatusCode, respBody)
	}

	c.logger.Debug().Str("to", msg.Phone).Msg("SMS message sent")
	return nil
}
