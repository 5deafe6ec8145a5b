package memory

import (
	"slices"

	"github.com/mmynk/billsplit/internal/models"
)

// Registry is an immutable, ordered snapshot of the friend list.
// Every modifying operation returns a new Registry; earlier snapshots
// keep their contents.
type Registry struct {
	friends []models.Friend
}

// NewRegistry creates a snapshot holding a copy of friends.
func NewRegistry(friends []models.Friend) Registry {
	return Registry{friends: slices.Clone(friends)}
}

// Len returns the number of friends in the snapshot.
func (r Registry) Len() int { return len(r.friends) }

// Friends returns a copy of the friends in insertion order.
func (r Registry) Friends() []models.Friend {
	return slices.Clone(r.friends)
}

// Get retrieves a friend by ID.
func (r Registry) Get(id string) (models.Friend, bool) {
	i := r.index(id)
	if i < 0 {
		return models.Friend{}, false
	}
	return r.friends[i], true
}

// Append returns a snapshot with friend added at the end.
func (r Registry) Append(friend models.Friend) Registry {
	next := make([]models.Friend, len(r.friends), len(r.friends)+1)
	copy(next, r.friends)
	return Registry{friends: append(next, friend)}
}

// ApplyDelta returns a snapshot where the matching friend's balance is
// increased by amount. If no friend matches, r is returned unchanged.
func (r Registry) ApplyDelta(id string, amount float64) (Registry, bool) {
	i := r.index(id)
	if i < 0 {
		return r, false
	}
	next := slices.Clone(r.friends)
	next[i].Balance += amount
	return Registry{friends: next}, true
}

func (r Registry) index(id string) int {
	return slices.IndexFunc(r.friends, func(f models.Friend) bool { return f.ID == id })
}
