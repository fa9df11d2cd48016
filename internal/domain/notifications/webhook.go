package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Webhook posts event messages to a chat webhook. Delivery is best effort:
// failures are logged and swallowed so a flaky chat integration never breaks
// a vacation request.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (w *Webhook) Notify(ctx context.Context, message string) {
	if w.URL == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		slog.Warn("webhook payload marshal failed", "err", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(payload))
	if err != nil {
		slog.Warn("webhook request build failed", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		slog.Warn("webhook delivery failed", "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("webhook delivery rejected", "err", fmt.Errorf("status %d", resp.StatusCode))
	}
}
