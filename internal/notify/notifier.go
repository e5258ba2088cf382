package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured means the channel has no usable credentials; callers
// treat it as a skip rather than a delivery failure.
var ErrNotConfigured = errors.New("notification channel not configured")

// Notifier delivers a formatted text message to an external channel.
// Delivery is best-effort: failures are reported, never retried here.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
