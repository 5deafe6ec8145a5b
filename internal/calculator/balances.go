package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/billsplit/internal/models"
)

// BalanceKind classifies a friend's balance from the user's point of view.
type BalanceKind int

const (
	// BalanceEven means nobody owes anything.
	BalanceEven BalanceKind = iota
	// BalanceUserOwes means the user owes the friend (negative balance).
	BalanceUserOwes
	// BalanceFriendOwes means the friend owes the user (positive balance).
	BalanceFriendOwes
)

// BalanceStatus is the display form of one friend's balance.
type BalanceStatus struct {
	Kind    BalanceKind
	Amount  float64 // Absolute value of the balance
	Message string
}

// Describe renders the balance sentence shown under a friend's name.
func Describe(name string, balance float64) BalanceStatus {
	abs := math.Abs(balance)
	switch {
	case balance < 0:
		return BalanceStatus{
			Kind:    BalanceUserOwes,
			Amount:  abs,
			Message: fmt.Sprintf("You owe %s %s$", name, FormatMoney(abs)),
		}
	case balance > 0:
		return BalanceStatus{
			Kind:    BalanceFriendOwes,
			Amount:  abs,
			Message: fmt.Sprintf("%s owes you %s$", name, FormatMoney(abs)),
		}
	default:
		return BalanceStatus{
			Kind:    BalanceEven,
			Message: fmt.Sprintf("You and %s are even", name),
		}
	}
}

// Summary aggregates balances across the whole friend list.
type Summary struct {
	TotalOwed  float64 // What friends owe the user
	TotalOwing float64 // What the user owes friends
	Net        float64 // TotalOwed - TotalOwing
	Friends    int
	Even       int
}

// Summarize totals the balances of the given friends.
func Summarize(friends []models.Friend) Summary {
	var s Summary
	for _, f := range friends {
		s.Friends++
		switch {
		case f.Balance > 0:
			s.TotalOwed += f.Balance
		case f.Balance < 0:
			s.TotalOwing += -f.Balance
		default:
			s.Even++
		}
	}
	s.Net = s.TotalOwed - s.TotalOwing
	return s
}
