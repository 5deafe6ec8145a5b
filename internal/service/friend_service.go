// Package service exposes the bill-splitting widget as a Connect RPC service.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
	pb "github.com/mmynk/billsplit/pkg/proto"
	"github.com/mmynk/billsplit/pkg/proto/protoconnect"
)

// FriendService implements the Connect FriendService on top of a widget.Controller.
// Every procedure maps onto the same events the web and terminal widgets raise.
type FriendService struct {
	protoconnect.UnimplementedFriendServiceHandler
	ctrl *widget.Controller
}

// NewFriendService creates a new FriendService driving the given controller.
func NewFriendService(ctrl *widget.Controller) *FriendService {
	return &FriendService{ctrl: ctrl}
}

// GetState returns the current widget state.
func (s *FriendService) GetState(ctx context.Context, req *connect.Request[pb.GetStateRequest]) (*connect.Response[pb.GetStateResponse], error) {
	return connect.NewResponse(&pb.GetStateResponse{State: toState(s.ctrl.Snapshot())}), nil
}

// ToggleAddForm opens or closes the add-friend form.
func (s *FriendService) ToggleAddForm(ctx context.Context, req *connect.Request[pb.ToggleAddFormRequest]) (*connect.Response[pb.ToggleAddFormResponse], error) {
	s.ctrl.ToggleAddForm()
	return connect.NewResponse(&pb.ToggleAddFormResponse{State: toState(s.ctrl.Snapshot())}), nil
}

// AddFriend fills in and submits the add-friend form. An empty image URL
// falls back to the default avatar. An empty name leaves the list unchanged
// and reports Added=false.
func (s *FriendService) AddFriend(ctx context.Context, req *connect.Request[pb.AddFriendRequest]) (*connect.Response[pb.AddFriendResponse], error) {
	image := req.Msg.GetImageUrl()
	if image == "" {
		image = s.ctrl.DefaultImageURL()
	}

	friend, added := s.ctrl.AddFriend(req.Msg.GetName(), image)
	resp := &pb.AddFriendResponse{Added: added, State: toState(s.ctrl.Snapshot())}
	if added {
		resp.Friend = toFriend(friend, false)
	}
	return connect.NewResponse(resp), nil
}

// SelectFriend toggles the selection of a friend.
func (s *FriendService) SelectFriend(ctx context.Context, req *connect.Request[pb.SelectFriendRequest]) (*connect.Response[pb.SelectFriendResponse], error) {
	if err := s.ctrl.ToggleSelect(req.Msg.GetFriendId()); err != nil {
		if errors.Is(err, widget.ErrFriendNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("SelectFriend failed", "friend_id", req.Msg.GetFriendId(), "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&pb.SelectFriendResponse{State: toState(s.ctrl.Snapshot())}), nil
}

// ClearSelection closes the split-bill form without settling.
func (s *FriendService) ClearSelection(ctx context.Context, req *connect.Request[pb.ClearSelectionRequest]) (*connect.Response[pb.ClearSelectionResponse], error) {
	s.ctrl.ClearSelection()
	return connect.NewResponse(&pb.ClearSelectionResponse{State: toState(s.ctrl.Snapshot())}), nil
}

// UpdateSplitDraft replaces the split-form fields without submitting, so
// callers can show the derived friend expense. Without a selection the
// request is ignored.
func (s *FriendService) UpdateSplitDraft(ctx context.Context, req *connect.Request[pb.UpdateSplitDraftRequest]) (*connect.Response[pb.UpdateSplitDraftResponse], error) {
	payer, err := fromPayer(req.Msg.GetPayer())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.ctrl.UpdateSplit(req.Msg.GetTotalBill(), req.Msg.GetYourExpense(), payer)
	return connect.NewResponse(&pb.UpdateSplitDraftResponse{State: toState(s.ctrl.Snapshot())}), nil
}

// SplitBill replaces the split-form fields and submits them in one step.
// Missing amounts or no selection leave balances unchanged and report Settled=false.
func (s *FriendService) SplitBill(ctx context.Context, req *connect.Request[pb.SplitBillRequest]) (*connect.Response[pb.SplitBillResponse], error) {
	payer, err := fromPayer(req.Msg.GetPayer())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	delta, settled := s.ctrl.SplitBill(req.Msg.GetTotalBill(), req.Msg.GetYourExpense(), payer)
	return connect.NewResponse(&pb.SplitBillResponse{
		Settled: settled,
		Delta:   delta,
		State:   toState(s.ctrl.Snapshot()),
	}), nil
}

// fromPayer maps the wire enum onto calculator.Payer. Unspecified means the user.
func fromPayer(p pb.Payer) (calculator.Payer, error) {
	switch p {
	case pb.Payer_PAYER_UNSPECIFIED, pb.Payer_PAYER_USER:
		return calculator.PayerUser, nil
	case pb.Payer_PAYER_FRIEND:
		return calculator.PayerFriend, nil
	default:
		return "", fmt.Errorf("%w: %d", calculator.ErrInvalidPayer, p)
	}
}
