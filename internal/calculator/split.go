package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPayer is returned when a payer name is neither "user" nor "friend".
var ErrInvalidPayer = errors.New("payer must be \"user\" or \"friend\"")

// Payer identifies who paid the bill being split.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// ParsePayer converts form or API input into a Payer.
func ParsePayer(s string) (Payer, error) {
	switch Payer(s) {
	case PayerUser, PayerFriend:
		return Payer(s), nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidPayer, s)
}

// Amount is a numeric form value that may not have been entered yet.
// The zero Amount is empty.
type Amount struct {
	value float64
	known bool
}

// NewAmount returns a present Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{value: v, known: true}
}

// ParseAmount converts raw text input into an Amount.
// Blank or unparsable text yields the empty Amount rather than zero.
func ParseAmount(text string) Amount {
	text = strings.TrimSpace(text)
	if text == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return NewAmount(v)
}

// Known reports whether a value has been entered.
func (a Amount) Known() bool { return a.known }

// Value returns the entered value, or 0 for the empty Amount.
func (a Amount) Value() float64 { return a.value }

// String renders the Amount for an input field; empty renders as "".
func (a Amount) String() string {
	if !a.known {
		return ""
	}
	return FormatMoney(a.value)
}

// FormatMoney renders v with the shortest representation that round-trips.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FriendExpense derives the friend's share of a bill from the total and the
// user's own share. The result is empty until the total is entered.
// No bounds are enforced: an expense above the total yields a negative share.
func FriendExpense(total, yours Amount) Amount {
	if !total.known {
		return Amount{}
	}
	return NewAmount(total.value - yours.value)
}

// SettlementDelta computes the change to apply to the friend's balance.
// When the user pays, the friend now owes their share (positive delta).
// When the friend pays, the user owes it back (negative delta).
func SettlementDelta(payer Payer, friendExpense float64) float64 {
	if payer == PayerFriend {
		return -friendExpense
	}
	return friendExpense
}
