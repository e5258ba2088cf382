package cart

import "context"

// Store keeps per-session cart state. A session that was never written reads
// back as the zero State. Implementations live in internal/session.
type Store interface {
	Get(ctx context.Context, sessionID string) (State, error)
	Put(ctx context.Context, sessionID string, s State) error
	Delete(ctx context.Context, sessionID string) error
}
