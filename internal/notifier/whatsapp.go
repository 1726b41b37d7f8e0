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

const defaultGraphAPIBase = "https://graph.facebook.com/v17.0"

// WhatsAppChannel delivers messages through the WhatsApp Cloud API.
type WhatsAppChannel struct {
	baseURL  string
	token    string
	phoneID  string
	simulate bool
	client   *http.Client
	logger   zerolog.Logger
}

// NewWhatsAppChannel builds the channel from configuration.
func NewWhatsAppChannel(cfg config.NotifyConfig, logger zerolog.Logger) *WhatsAppChannel {
	return &WhatsAppChannel{
		baseURL:  defaultGraphAPIBase,
		token:    cfg.WhatsAppToken,
		phoneID:  cfg.WhatsAppPhoneID,
		simulate: cfg.Simulate,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger.With().Str("channel", "whatsapp").Logger(),
	}
}

// SetBaseURL overrides the Cloud API endpoint. Used in tests.
func (c *WhatsAppChannel) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *WhatsAppChannel) Name() string { return "whatsapp" }

// Send posts a text message to the recipient's phone number.
func (c *WhatsAppChannel) Send(ctx context.Context, msg Message) error {
	if msg.Phone == "" {
		return fmt.Errorf("whatsapp: recipient phone is empty")
	}

	if c.simulate {
		c.logger.Info().
			Str("to", msg.Phone).
			Str("body", msg.Body).
			Msg("simulated WhatsApp message")
		return nil
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                msg.Phone,
		"type":              "text",
		"text":              map[string]string{"body": msg.Body},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whatsapp: unexpected status %d: %s", resp.StatusCode, respBody)
	}

	c.logger.Debug().Str("to", msg.Phone).Msg("WhatsApp message sent")
	return nil
}
