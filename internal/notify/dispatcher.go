package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CosmoTheDev/discord-pr-notify/models"
)

// Dispatcher sends one message body to every destination, in order.
type Dispatcher struct {
	channels []Channel
}

// NewDispatcher creates a Dispatcher with one DiscordChannel per URL. Empty
// URLs are kept and fail when their turn comes.
func NewDispatcher(urls []string, client *http.Client) *Dispatcher {
	channels := make([]Channel, 0, len(urls))
	for _, u := range urls {
		channels = append(channels, NewDiscord(u, client))
	}
	return NewDispatcherWithChannels(channels...)
}

// NewDispatcherWithChannels creates a Dispatcher over arbitrary channels.
func NewDispatcherWithChannels(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// Dispatch encodes body once and sends it to each channel sequentially. The
// first send error stops the loop; later channels are not attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, body models.MessageBody) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding message body: %w", err)
	}
	slog.Debug("notify: message body", "body", string(payload))

	for i, ch := range d.channels {
		if err := ch.Send(ctx, payload); err != nil {
			return fmt.Errorf("sending to webhook %d of %d: %w", i+1, len(d.channels), err)
		}
		slog.Info("notify: message sent", "channel", ch.Name(), "index", i+1, "total", len(d.channels))
	}
	return nil
}
