package widget

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// ErrFriendNotFound is returned when an event names a friend that is not in the list.
var ErrFriendNotFound = errors.New("friend not found")

// Form names reported to the Recorder for ignored submissions.
const (
	FormAddFriend = "add_friend"
	FormSplitBill = "split_bill"
)

// Recorder receives a notification for every state-changing outcome.
// internal/metrics provides the Prometheus implementation.
type Recorder interface {
	FriendAdded()
	Settled(payer calculator.Payer)
	Ignored(form string)
}

type nopRecorder struct{}

func (nopRecorder) FriendAdded() {}
func (nopRecorder) Settled(calculator.Payer) {}
func (nopRecorder) Ignored(string) {}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithIDGenerator replaces the UUID generator used for new friends.
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) { c.newID = gen }
}

// WithAvatarURL sets the default image URL offered by the add-friend form.
func WithAvatarURL(url string) Option {
	return func(c *Controller) { c.avatarURL = url }
}

// Controller owns the widget state and applies input events to it.
// Events are serialized: each one holds the lock until it and its observer
// notifications complete. Observers must not call back into the Controller.
type Controller struct {
	mu sync.Mutex

	store     storage.FriendStore
	recorder  Recorder
	newID     func() string
	avatarURL string

	selectedID    string
	showAddFriend bool
	addDraft      AddFriendDraft
	splitDraft    SplitDraft

	observers  map[int]func(Snapshot)
	order      []int
	nextHandle int
}

// New creates a Controller over the given friend store.
func New(store storage.FriendStore, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		recorder:  nopRecorder{},
		newID:     uuid.NewString,
		avatarURL: DefaultAvatarURL,
		observers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.addDraft = c.defaultAddDraft()
	c.splitDraft = newSplitDraft()
	return c
}

// Subscribe registers fn to be called with the resulting state after every event.
// Observers run synchronously in subscription order. The returned function
// removes the observer.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.nextHandle
	c.nextHandle++
	c.observers[h] = fn
	c.order = append(c.order, h)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, h)
		for i, v := range c.order {
			if v == h {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ToggleAddForm opens or closes the add-friend form. Opening it clears the
// selection; either way the form starts from default drafts.
func (c *Controller) ToggleAddForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.notifyLocked()

	c.showAddFriend = !c.showAddFriend
	c.addDraft = c.defaultAddDraft()
	if c.showAddFriend {
		c.clearSelectionLocked()
	}
	slog.Debug("Add friend form toggled", "open", c.showAddFriend)
}

// ToggleSelect selects the friend with the given ID, or clears the selection
// if that friend is already selected. Selecting a different friend replaces
// the selection. Any selection change closes the add-friend form.
func (c *Controller) ToggleSelect(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrFriendNotFound, id)
	}
	defer c.notifyLocked()

	switch c.selectedID {
	case id:
		c.clearSelectionLocked()
	case "":
		c.selectedID = id
		c.splitDraft = newSplitDraft()
	default:
		c.selectedID = id
	}
	c.showAddFriend = false
	c.addDraft = c.defaultAddDraft()

	slog.Debug("Selection toggled", "friend_id", id, "selected", c.selectedID != "")
	return nil
}

// ClearSelection deselects the current friend and discards the split drafts.
// It does nothing when no friend is selected.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return
	}
	defer c.notifyLocked()
	c.clearSelectionLocked()
}

// SetFriendName updates the add-friend name draft.
func (c *Controller) SetFriendName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.notifyLocked()
	c.addDraft.Name = name
}

// SetFriendImage updates the add-friend image URL draft.
func (c *Controller) SetFriendImage(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.notifyLocked()
	c.addDraft.ImageURL = url
}

// SubmitAddFriend creates a friend from the drafts. It is a silent no-op when
// either draft is empty. On success the drafts reset to their defaults and the
// form stays open.
func (c *Controller) SubmitAddFriend() (models.Friend, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	friend, ok := c.submitAddFriendLocked()
	if ok {
		c.notifyLocked()
	}
	return friend, ok
}

// AddFriend fills the add-friend drafts with name and imageURL and submits
// them as a single event. Concurrent callers never see each other's drafts.
// When the submission is ignored the given values stay in the drafts.
func (c *Controller) AddFriend(name, imageURL string) (models.Friend, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft := AddFriendDraft{Name: name, ImageURL: imageURL}
	changed := draft != c.addDraft
	c.addDraft = draft

	friend, ok := c.submitAddFriendLocked()
	if ok || changed {
		c.notifyLocked()
	}
	return friend, ok
}

func (c *Controller) submitAddFriendLocked() (models.Friend, bool) {
	draft := c.addDraft
	if draft.Name == "" || draft.ImageURL == "" {
		slog.Debug("Add friend ignored", "name_empty", draft.Name == "", "image_empty", draft.ImageURL == "")
		c.recorder.Ignored(FormAddFriend)
		return models.Friend{}, false
	}

	id := c.newID()
	friend := models.Friend{
		ID:      id,
		Name:    draft.Name,
		Image:   draft.ImageURL + "?=" + id,
		Balance: 0,
	}
	c.store.Append(friend)
	c.addDraft = c.defaultAddDraft()
	c.recorder.FriendAdded()

	slog.Info("Friend added", "friend_id", id, "name", friend.Name)
	return friend, true
}

// DefaultImageURL is the image URL the add-friend form starts with.
func (c *Controller) DefaultImageURL() string {
	return c.avatarURL
}

// SetTotalBill parses text into the total bill draft. The split drafts only
// exist while a friend is selected; without a selection this is a no-op.
func (c *Controller) SetTotalBill(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return
	}
	defer c.notifyLocked()
	c.splitDraft.TotalBill = calculator.ParseAmount(text)
}

// SetYourExpense parses text into the user's expense draft.
// Like SetTotalBill it is ignored while no friend is selected.
func (c *Controller) SetYourExpense(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return
	}
	defer c.notifyLocked()
	c.splitDraft.YourExpense = calculator.ParseAmount(text)
}

// SetPayer records who is paying the bill.
func (c *Controller) SetPayer(payer calculator.Payer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return
	}
	defer c.notifyLocked()
	c.splitDraft.Payer = payer
}

// UpdateSplit replaces all split drafts as a single event. It reports false
// and changes nothing while no friend is selected.
func (c *Controller) UpdateSplit(totalBill, yourExpense string, payer calculator.Payer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return false
	}

	draft := SplitDraft{
		TotalBill:   calculator.ParseAmount(totalBill),
		YourExpense: calculator.ParseAmount(yourExpense),
		Payer:       payer,
	}
	if draft != c.splitDraft {
		c.splitDraft = draft
		c.notifyLocked()
	}
	return true
}

// SubmitSplit settles the drafted bill against the selected friend and clears
// the selection. It is a silent no-op when no friend is selected or either
// amount is empty. The returned delta is the amount added to the balance.
func (c *Controller) SubmitSplit() (delta float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delta, ok = c.submitSplitLocked()
	if ok {
		c.notifyLocked()
	}
	return delta, ok
}

// SplitBill replaces the split drafts and submits them as a single event, so
// the bill settles against the friend selected when the drafts were written.
// Without a selection nothing changes.
func (c *Controller) SplitBill(totalBill, yourExpense string, payer calculator.Payer) (delta float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	if c.selectedID != "" {
		draft := SplitDraft{
			TotalBill:   calculator.ParseAmount(totalBill),
			YourExpense: calculator.ParseAmount(yourExpense),
			Payer:       payer,
		}
		changed = draft != c.splitDraft
		c.splitDraft = draft
	}

	delta, ok = c.submitSplitLocked()
	if ok || changed {
		c.notifyLocked()
	}
	return delta, ok
}

func (c *Controller) submitSplitLocked() (float64, bool) {
	draft := c.splitDraft
	if c.selectedID == "" || !draft.TotalBill.Known() || !draft.YourExpense.Known() {
		slog.Debug("Split bill ignored",
			"selected", c.selectedID != "",
			"total_empty", !draft.TotalBill.Known(),
			"expense_empty", !draft.YourExpense.Known(),
		)
		c.recorder.Ignored(FormSplitBill)
		return 0, false
	}

	delta := calculator.SettlementDelta(draft.Payer, draft.FriendExpense().Value())
	id := c.selectedID
	if !c.store.ApplyDelta(id, delta) {
		slog.Warn("Split bill: selected friend missing from list", "friend_id", id)
	}
	c.clearSelectionLocked()
	c.recorder.Settled(draft.Payer)

	slog.Info("Bill split",
		"friend_id", id,
		"total_bill", draft.TotalBill.Value(),
		"your_expense", draft.YourExpense.Value(),
		"payer", draft.Payer,
		"delta", delta,
	)
	return delta, true
}

func (c *Controller) defaultAddDraft() AddFriendDraft {
	return AddFriendDraft{ImageURL: c.avatarURL}
}

// clearSelectionLocked drops the selection together with the split drafts,
// since the split form only exists while a friend is selected.
func (c *Controller) clearSelectionLocked() {
	c.selectedID = ""
	c.splitDraft = newSplitDraft()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Friends:       c.store.List(),
		ShowAddFriend: c.showAddFriend,
		AddFriend:     c.addDraft,
		Split:         c.splitDraft,
	}
	if c.selectedID != "" {
		if f, ok := c.store.Get(c.selectedID); ok {
			s.Selected = &f
		}
	}
	return s
}

func (c *Controller) notifyLocked() {
	if len(c.order) == 0 {
		return
	}
	snap := c.snapshotLocked()
	for _, h := range c.order {
		c.observers[h](snap)
	}
}
