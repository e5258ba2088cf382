package session

import (
	"context"
	"sync"
	"time"

	"pubhouse-be/internal/cart"
)

type entry struct {
	state     cart.State
	expiresAt time.Time
}

// MemoryStore is an in-process cart.Store with TTL eviction. It backs
// development setups and tests; production uses RedisStore.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:   ttl,
		items: make(map[string]entry),
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (cart.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return cart.State{}, nil
	}
	return e.state, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, st cart.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sessionID] = entry{state: st, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, sessionID)
	return nil
}

// cleanupLoop removes expired sessions to keep the map from growing without
// bound.
func (s *MemoryStore) cleanupLoop() {
	for {
		time.Sleep(time.Minute)

		now := time.Now()
		s.mu.Lock()
		for id, e := range s.items {
			if now.After(e.expiresAt) {
				delete(s.items, id)
			}
		}
		s.mu.Unlock()
	}
}
