package widget

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// DefaultAvatarURL is the placeholder image base for new friends.
const DefaultAvatarURL = "https://i.pravatar.cc/48"

// AddFriendDraft is the in-progress content of the add-friend form.
type AddFriendDraft struct {
	Name     string
	ImageURL string
}

// SplitDraft is the in-progress content of the split-bill form.
type SplitDraft struct {
	TotalBill   calculator.Amount
	YourExpense calculator.Amount
	Payer       calculator.Payer
}

// FriendExpense is the friend's derived share; empty until the total is entered.
func (d SplitDraft) FriendExpense() calculator.Amount {
	return calculator.FriendExpense(d.TotalBill, d.YourExpense)
}

func newSplitDraft() SplitDraft {
	return SplitDraft{Payer: calculator.PayerUser}
}

// Snapshot is the widget state as of the end of the last completed event.
// It shares nothing with the Controller and may be kept or rendered freely.
type Snapshot struct {
	Friends       []models.Friend
	Selected      *models.Friend
	ShowAddFriend bool
	AddFriend     AddFriendDraft
	Split         SplitDraft
}

// IsSelected reports whether the friend with the given ID is selected.
func (s Snapshot) IsSelected(id string) bool {
	return s.Selected != nil && s.Selected.ID == id
}

// FriendExpense is the derived friend share for the split form.
func (s Snapshot) FriendExpense() calculator.Amount {
	return s.Split.FriendExpense()
}
