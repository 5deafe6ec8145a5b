package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		friend  string
		balance float64
		kind    BalanceKind
		message string
	}{
		{name: "user owes", friend: "Clark", balance: -7, kind: BalanceUserOwes, message: "You owe Clark 7$"},
		{name: "friend owes", friend: "Sarah", balance: 20, kind: BalanceFriendOwes, message: "Sarah owes you 20$"},
		{name: "even", friend: "Anthony", balance: 0, kind: BalanceEven, message: "You and Anthony are even"},
		{name: "fractional", friend: "Mia", balance: -12.5, kind: BalanceUserOwes, message: "You owe Mia 12.5$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.friend, tt.balance)
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Message != tt.message {
				t.Errorf("Message = %q, want %q", got.Message, tt.message)
			}
			if got.Amount != math.Abs(tt.balance) {
				t.Errorf("Amount = %v, want %v", got.Amount, math.Abs(tt.balance))
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(models.SeedFriends())

	// Clark -7, Sarah +20, Anthony 0
	if s.Friends != 3 {
		t.Errorf("Friends = %d, want 3", s.Friends)
	}
	if s.TotalOwed != 20 {
		t.Errorf("TotalOwed = %v, want 20", s.TotalOwed)
	}
	if s.TotalOwing != 7 {
		t.Errorf("TotalOwing = %v, want 7", s.TotalOwing)
	}
	if s.Net != 13 {
		t.Errorf("Net = %v, want 13", s.Net)
	}
	if s.Even != 1 {
		t.Errorf("Even = %d, want 1", s.Even)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", empty)
	}
}
