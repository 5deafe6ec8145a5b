// Package memory provides an in-process implementation of the storage.FriendStore interface.
package memory

import (
	"sync"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// Ensure Store implements storage.FriendStore
var _ storage.FriendStore = (*Store)(nil)

// Store implements storage.FriendStore by swapping immutable Registry snapshots.
// Nothing is written to disk; the list lives for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	current Registry
}

// New creates a Store seeded with the given friends.
func New(seed []models.Friend) *Store {
	return &Store{current: NewRegistry(seed)}
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// List returns the friends in insertion order.
func (s *Store) List() []models.Friend {
	return s.Snapshot().Friends()
}

// Get retrieves a friend by ID.
func (s *Store) Get(id string) (models.Friend, bool) {
	return s.Snapshot().Get(id)
}

// Append adds a friend to the end of the list.
func (s *Store) Append(friend models.Friend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Append(friend)
}

// ApplyDelta adds amount to the matching friend's balance.
func (s *Store) ApplyDelta(id string, amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.current.ApplyDelta(id, amount)
	s.current = next
	return ok
}
