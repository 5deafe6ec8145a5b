package models

// Friend represents one entry in the friend list.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format for friends
	// added at runtime, numeric strings for the seeded examples).
	ID string

	// Name is the display name of the friend.
	Name string

	// Image is the avatar URL rendered next to the friend.
	Image string

	// Balance is the net amount between the user and this friend.
	// Negative = user owes friend, positive = friend owes user.
	Balance float64
}

// SeedFriends returns the example friends every new widget starts with.
func SeedFriends() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836", Balance: -7},
		{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372", Balance: 20},
		{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476", Balance: 0},
	}
}
