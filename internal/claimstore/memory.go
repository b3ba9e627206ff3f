// Package claimstore holds the in-memory claim queue. Claims live only for
// the process lifetime; the orchestration pipeline is the sole writer and
// always prepends, so the newest claim is first.
package claimstore

import (
	"sync"

	"claims-decision-orchestrator/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	claims []domain.ClaimRecord
}

func New(seed ...domain.ClaimRecord) *Store {
	s := &Store{claims: make([]domain.ClaimRecord, 0, len(seed))}
	s.claims = append(s.claims, seed...)
	return s
}

// Prepend inserts a record at the head of the queue.
func (s *Store) Prepend(rec domain.ClaimRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append([]domain.ClaimRecord{rec}, s.claims...)
}

// List returns a copy of the queue, newest first.
func (s *Store) List() []domain.ClaimRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ClaimRecord, len(s.claims))
	copy(out, s.claims)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.claims)
}
