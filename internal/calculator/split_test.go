package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKnown bool
		wantValue float64
	}{
		{name: "empty is not zero", input: "", wantKnown: false},
		{name: "whitespace only", input: "   ", wantKnown: false},
		{name: "integer", input: "100", wantKnown: true, wantValue: 100},
		{name: "decimal", input: "12.5", wantKnown: true, wantValue: 12.5},
		{name: "explicit zero is present", input: "0", wantKnown: true, wantValue: 0},
		{name: "negative accepted", input: "-40", wantKnown: true, wantValue: -40},
		{name: "surrounding spaces", input: " 7 ", wantKnown: true, wantValue: 7},
		{name: "garbage", input: "abc", wantKnown: false},
		{name: "infinity rejected", input: "Inf", wantKnown: false},
		{name: "NaN rejected", input: "NaN", wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got.Known() != tt.wantKnown {
				t.Fatalf("ParseAmount(%q).Known() = %v, want %v", tt.input, got.Known(), tt.wantKnown)
			}
			if got.Value() != tt.wantValue {
				t.Errorf("ParseAmount(%q).Value() = %v, want %v", tt.input, got.Value(), tt.wantValue)
			}
		})
	}
}

func TestAmountString(t *testing.T) {
	if got := (Amount{}).String(); got != "" {
		t.Errorf("empty amount rendered %q, want empty string", got)
	}
	if got := NewAmount(60).String(); got != "60" {
		t.Errorf("NewAmount(60).String() = %q, want %q", got, "60")
	}
	if got := NewAmount(12.25).String(); got != "12.25" {
		t.Errorf("NewAmount(12.25).String() = %q, want %q", got, "12.25")
	}
}

func TestFriendExpense(t *testing.T) {
	tests := []struct {
		name      string
		total     Amount
		yours     Amount
		wantKnown bool
		want      float64
	}{
		{name: "both entered", total: NewAmount(100), yours: NewAmount(40), wantKnown: true, want: 60},
		{name: "total missing", total: Amount{}, yours: NewAmount(40), wantKnown: false},
		{name: "expense missing counts as zero", total: NewAmount(100), yours: Amount{}, wantKnown: true, want: 100},
		{name: "expense above total goes negative", total: NewAmount(50), yours: NewAmount(80), wantKnown: true, want: -30},
		{name: "negative bill", total: NewAmount(-10), yours: NewAmount(5), wantKnown: true, want: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendExpense(tt.total, tt.yours)
			if got.Known() != tt.wantKnown {
				t.Fatalf("FriendExpense().Known() = %v, want %v", got.Known(), tt.wantKnown)
			}
			if tt.wantKnown && math.Abs(got.Value()-tt.want) > 0.0001 {
				t.Errorf("FriendExpense() = %v, want %v", got.Value(), tt.want)
			}
		})
	}
}

func TestSettlementDelta(t *testing.T) {
	if got := SettlementDelta(PayerUser, 60); got != 60 {
		t.Errorf("user pays: delta = %v, want 60", got)
	}
	if got := SettlementDelta(PayerFriend, 60); got != -60 {
		t.Errorf("friend pays: delta = %v, want -60", got)
	}
	// Negative friend share flips as well
	if got := SettlementDelta(PayerFriend, -30); got != 30 {
		t.Errorf("friend pays negative share: delta = %v, want 30", got)
	}
}

func TestParsePayer(t *testing.T) {
	for _, s := range []string{"user", "friend"} {
		p, err := ParsePayer(s)
		if err != nil {
			t.Errorf("ParsePayer(%q) error = %v", s, err)
		}
		if string(p) != s {
			t.Errorf("ParsePayer(%q) = %q", s, p)
		}
	}

	_, err := ParsePayer("both")
	if !errors.Is(err, ErrInvalidPayer) {
		t.Errorf("ParsePayer(\"both\") error = %v, want ErrInvalidPayer", err)
	}
}
