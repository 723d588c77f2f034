package notify

import "context"

// Channel delivers an encoded message body to one destination.
type Channel interface {
	Name() string
	Send(ctx context.Context, payload []byte) error
}
