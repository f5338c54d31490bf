package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local delivery ledger.
type MemoryStore struct {
	mu      sync.RWMutex
	claimed map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{claimed: make(map[string]struct{})}
}

// Claim marks date as delivered.
func (s *MemoryStore) Claim(ctx context.Context, date string) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claimed[date]; ok {
		return false, nil
	}
	s.claimed[date] = struct{}{}
	return true, nil
}

// Release removes a claim.
func (s *MemoryStore) Release(ctx context.Context, date string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claimed, date)
	return nil
}

// Delivered reports whether date has been claimed.
func (s *MemoryStore) Delivered(ctx context.Context, date string) (bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.claimed[date]
	return ok, nil
}
