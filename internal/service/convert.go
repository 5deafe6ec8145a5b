package service

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/widget"
	pb "github.com/mmynk/billsplit/pkg/proto"
)

func toFriend(f models.Friend, selected bool) *pb.Friend {
	return &pb.Friend{
		Id:       f.ID,
		Name:     f.Name,
		Image:    f.Image,
		Balance:  f.Balance,
		Status:   calculator.Describe(f.Name, f.Balance).Message,
		Selected: selected,
	}
}

func toPayer(p calculator.Payer) pb.Payer {
	if p == calculator.PayerFriend {
		return pb.Payer_PAYER_FRIEND
	}
	return pb.Payer_PAYER_USER
}

func toState(s widget.Snapshot) *pb.State {
	st := &pb.State{
		Friends:       make([]*pb.Friend, len(s.Friends)),
		ShowAddFriend: s.ShowAddFriend,
		AddFriend: &pb.AddFriendDraft{
			Name:     s.AddFriend.Name,
			ImageUrl: s.AddFriend.ImageURL,
		},
	}
	for i, f := range s.Friends {
		st.Friends[i] = toFriend(f, s.IsSelected(f.ID))
	}
	if s.Selected != nil {
		st.SelectedFriendId = s.Selected.ID
		st.Split = &pb.SplitDraft{
			TotalBill:     s.Split.TotalBill.String(),
			YourExpense:   s.Split.YourExpense.String(),
			FriendExpense: s.FriendExpense().String(),
			Payer:         toPayer(s.Split.Payer),
		}
	}
	sum := calculator.Summarize(s.Friends)
	st.Summary = &pb.Summary{TotalOwed: sum.TotalOwed, TotalOwing: sum.TotalOwing, Net: sum.Net}
	return st
}
