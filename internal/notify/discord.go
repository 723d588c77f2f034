package notify

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
)

// DiscordChannel posts to a single Discord webhook URL.
type DiscordChannel struct {
	url    string
	client *http.Client
}

// NewDiscord creates a DiscordChannel. A nil client uses http.DefaultClient,
// so there is no timeout beyond the request context.
func NewDiscord(url string, client *http.Client) *DiscordChannel {
	if client == nil {
		client = http.DefaultClient
	}
	return &DiscordChannel{url: url, client: client}
}

func (d *DiscordChannel) Name() string { return "discord" }

// Send POSTs payload. Only transport failures are returned; a non-2xx
// response is logged and otherwise ignored.
func (d *DiscordChannel) Send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req) // #nosec G107 -- URL is a user-configured Discord webhook
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		slog.Warn("notify: webhook returned non-success status", "channel", d.Name(), "status", resp.StatusCode)
	}
	return nil
}
