package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultWebhookTimeout = 10 * time.Second
	maxWebhookErrorBody   = 256
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookSink posts reports to a Slack-compatible incoming webhook.
type WebhookSink struct {
	url    string
	client httpDoer
}

type webhookPayload struct {
	Text string `json:"text"`
}

// NewWebhookSink creates a webhook sink. A nil client gets a default with a timeout.
func NewWebhookSink(url string, client *http.Client) *WebhookSink {
	var doer httpDoer = client
	if client == nil {
		doer = &http.Client{Timeout: defaultWebhookTimeout}
	}
	return &WebhookSink{url: url, client: doer}
}

// Deliver posts {"text": text}. Any non-2xx response is an error.
func (s *WebhookSink) Deliver(ctx context.Context, text string) error {
	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxWebhookErrorBody))
		return fmt.Errorf("post webhook: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// New returns a webhook sink when url is set, otherwise a stdout writer sink.
func New(url string, client *http.Client) Sink {
	if url == "" {
		return NewWriterSink(nil)
	}
	return NewWebhookSink(url, client)
}
