package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNoChallenge = errors.New("no open challenge")

// ChallengeStore keeps the hashed code of each member's open challenge.
type ChallengeStore interface {
	Put(ctx context.Context, memberID string, hash []byte, ttl time.Duration) error

	// Take removes the open challenge and returns its hash with the time it had left.
	// It returns ErrNoChallenge when nothing is stored or the challenge has expired.
	// At most one concurrent caller gets a given challenge.
	Take(ctx context.Context, memberID string) ([]byte, time.Duration, error)

	// Restore puts back a taken challenge unless a newer one was issued meanwhile.
	Restore(ctx context.Context, memberID string, hash []byte, ttl time.Duration) error

	Delete(ctx context.Context, memberID string) error
}

type challenge struct {
	hash      []byte
	expiresAt time.Time
}

// MemoryChallengeStore is a process-local ChallengeStore.
type MemoryChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]challenge
	now        func() time.Time
}

// NewMemoryChallengeStore returns an empty store.
func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{
		challenges: make(map[string]challenge),
		now:        time.Now,
	}
}

func (s *MemoryChallengeStore) Put(_ context.Context, memberID string, hash []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, c := range s.challenges {
		if !now.Before(c.expiresAt) {
			delete(s.challenges, id)
		}
	}
	s.challenges[memberID] = challenge{hash: append([]byte{}, hash...), expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryChallengeStore) Take(_ context.Context, memberID string) ([]byte, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.challenges[memberID]
	if !ok {
		return nil, 0, ErrNoChallenge
	}
	delete(s.challenges, memberID)
	left := c.expiresAt.Sub(s.now())
	if left <= 0 {
		return nil, 0, ErrNoChallenge
	}
	return c.hash, left, nil
}

func (s *MemoryChallengeStore) Restore(_ context.Context, memberID string, hash []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.challenges[memberID]; ok && s.now().Before(c.expiresAt) {
		return nil
	}
	s.challenges[memberID] = challenge{hash: append([]byte{}, hash...), expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryChallengeStore) Delete(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, memberID)
	return nil
}
