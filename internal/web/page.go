package web

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

type friendRow struct {
	ID       string
	Name     string
	Image    string
	Status   string
	Class    string
	Selected bool
}

type splitForm struct {
	FriendName    string
	TotalBill     string
	YourExpense   string
	FriendExpense string
	Payer         string
}

type page struct {
	Friends       []friendRow
	ShowAddFriend bool
	AddFriend     widget.AddFriendDraft
	Split         *splitForm
	Summary       calculator.Summary
}

func newPage(s widget.Snapshot) page {
	p := page{
		Friends:       make([]friendRow, len(s.Friends)),
		ShowAddFriend: s.ShowAddFriend,
		AddFriend:     s.AddFriend,
		Summary:       calculator.Summarize(s.Friends),
	}
	for i, f := range s.Friends {
		status := calculator.Describe(f.Name, f.Balance)
		p.Friends[i] = friendRow{
			ID:       f.ID,
			Name:     f.Name,
			Image:    f.Image,
			Status:   status.Message,
			Class:    statusClass(status.Kind),
			Selected: s.IsSelected(f.ID),
		}
	}
	if s.Selected != nil {
		p.Split = &splitForm{
			FriendName:    s.Selected.Name,
			TotalBill:     s.Split.TotalBill.String(),
			YourExpense:   s.Split.YourExpense.String(),
			FriendExpense: s.FriendExpense().String(),
			Payer:         string(s.Split.Payer),
		}
	}
	return p
}

func statusClass(k calculator.BalanceKind) string {
	switch k {
	case calculator.BalanceUserOwes:
		return "red"
	case calculator.BalanceFriendOwes:
		return "green"
	}
	return ""
}
