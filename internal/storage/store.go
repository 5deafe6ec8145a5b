// Package storage provides abstractions for friend list storage.
package storage

import "github.com/mmynk/billsplit/internal/models"

// FriendStore defines the operations the widget needs from the friend list.
// This abstraction keeps the widget independent of how snapshots are held.
type FriendStore interface {
	// List returns the friends in insertion order.
	// The returned slice is owned by the caller.
	List() []models.Friend

	// Get retrieves a friend by ID.
	Get(id string) (models.Friend, bool)

	// Append adds a friend to the end of the list.
	// IDs are trusted to be unique; no check is made.
	Append(friend models.Friend)

	// ApplyDelta adds amount to the balance of the friend with the given ID.
	// It reports whether a friend matched; an unknown ID changes nothing.
	ApplyDelta(id string, amount float64) bool
}
