package session

import (
	"context"
	"sync"
	"time"

	"github.com/AdarCosmetics/salon-scheduler/internal/validators"
)

// MemoryStore is an in-process Store with an injectable clock.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	now      func() time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, phone string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := validators.PhoneDigits(phone)
	sess, ok := s.sessions[key]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(sess.ExpiresAt) {
		delete(s.sessions, key)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Set(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := validators.PhoneDigits(phone)
	s.sessions[key] = Session{
		Phone:      key,
		VerifiedAt: now,
		ExpiresAt:  now.Add(TTL),
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, validators.PhoneDigits(phone))
	return nil
}

var _ Store = (*MemoryStore)(nil)
