package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the single-process Store: a mutex-guarded map with
// per-session TTL and a janitor goroutine evicting expired entries.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	partial PartialAddress
	expires time.Time
}

// NewMemoryStore creates a memory store. A non-positive ttl falls back to
// DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Merge(_ context.Context, sessionID string, part Part, value string) (PartialAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expires) {
		e = &memoryEntry{}
		s.entries[sessionID] = e
	}

	e.partial.Set(part, value)
	// Activity refreshes the TTL so a slow multi-turn answer stays alive.
	e.expires = time.Now().Add(s.ttl)

	return e.partial, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (PartialAddress, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expires) {
		return PartialAddress{}, false, nil
	}
	return e.partial, true, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expires) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
