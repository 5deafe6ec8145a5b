package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

// focusArea is the part of the screen receiving key presses.
type focusArea int

const (
	focusList focusArea = iota
	focusAddForm
	focusSplitForm
)

// Field indices within each form.
const (
	fieldName = iota
	fieldImage
	addFieldCount
)

const (
	fieldTotal = iota
	fieldExpense
	fieldPayer
	splitFieldCount
)

// Model is the bubbletea model for the terminal widget. It keeps only
// cursor and focus state of its own; everything else is read from the
// controller snapshot on every frame.
type Model struct {
	ctrl *widget.Controller

	cursor int
	focus  focusArea
	field  int

	name    textinput.Model
	image   textinput.Model
	total   textinput.Model
	expense textinput.Model
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates a terminal widget over ctrl.
func New(ctrl *widget.Controller) *Model {
	return &Model{
		ctrl:    ctrl,
		name:    newInput("Friend name"),
		image:   newInput(widget.DefaultAvatarURL),
		total:   newInput("0"),
		expense: newInput("0"),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 32
	return ti
}

// Run starts the terminal widget and blocks until the user quits.
func Run(ctrl *widget.Controller) error {
	_, err := tea.NewProgram(New(ctrl), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusAddForm:
			return m, m.updateAddForm(msg)
		case focusSplitForm:
			return m, m.updateSplitForm(msg)
		default:
			return m, m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	snap := m.ctrl.Snapshot()

	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(snap.Friends)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(snap.Friends) {
			// Cursor always points at an existing friend
			_ = m.ctrl.ToggleSelect(snap.Friends[m.cursor].ID)
		}
		return m.refocus()
	case "a":
		m.ctrl.ToggleAddForm()
		return m.refocus()
	case "tab":
		return m.refocus()
	}
	return nil
}

func (m *Model) updateAddForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.ctrl.ToggleAddForm()
		return m.refocus()
	case "tab", "down":
		m.field = (m.field + 1) % addFieldCount
		return m.focusField()
	case "shift+tab", "up":
		m.field = (m.field + addFieldCount - 1) % addFieldCount
		return m.focusField()
	case "enter":
		if _, ok := m.ctrl.SubmitAddFriend(); ok {
			m.loadDrafts()
			m.field = fieldName
			return m.focusField()
		}
		return nil
	}

	var cmd tea.Cmd
	if m.field == fieldName {
		m.name, cmd = m.name.Update(msg)
		m.ctrl.SetFriendName(m.name.Value())
	} else {
		m.image, cmd = m.image.Update(msg)
		m.ctrl.SetFriendImage(m.image.Value())
	}
	return cmd
}

func (m *Model) updateSplitForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.ctrl.ClearSelection()
		return m.refocus()
	case "tab", "down":
		m.field = (m.field + 1) % splitFieldCount
		return m.focusField()
	case "shift+tab", "up":
		m.field = (m.field + splitFieldCount - 1) % splitFieldCount
		return m.focusField()
	case "enter":
		if _, ok := m.ctrl.SubmitSplit(); ok {
			return m.refocus()
		}
		return nil
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTotal:
		m.total, cmd = m.total.Update(msg)
		m.ctrl.SetTotalBill(m.total.Value())
	case fieldExpense:
		m.expense, cmd = m.expense.Update(msg)
		m.ctrl.SetYourExpense(m.expense.Value())
	case fieldPayer:
		switch msg.String() {
		case "left", "right", " ", "p":
			m.ctrl.SetPayer(otherPayer(m.ctrl.Snapshot().Split.Payer))
		}
	}
	return cmd
}

func otherPayer(p calculator.Payer) calculator.Payer {
	if p == calculator.PayerFriend {
		return calculator.PayerUser
	}
	return calculator.PayerFriend
}

// refocus moves focus to whichever form the controller currently shows and
// reloads its inputs from the drafts.
func (m *Model) refocus() tea.Cmd {
	snap := m.ctrl.Snapshot()
	switch {
	case snap.ShowAddFriend:
		m.focus = focusAddForm
	case snap.Selected != nil:
		m.focus = focusSplitForm
	default:
		m.focus = focusList
	}
	m.field = 0
	m.loadDrafts()
	return m.focusField()
}

func (m *Model) loadDrafts() {
	snap := m.ctrl.Snapshot()
	m.name.SetValue(snap.AddFriend.Name)
	m.image.SetValue(snap.AddFriend.ImageURL)
	m.total.SetValue(snap.Split.TotalBill.String())
	m.expense.SetValue(snap.Split.YourExpense.String())
}

func (m *Model) focusField() tea.Cmd {
	m.name.Blur()
	m.image.Blur()
	m.total.Blur()
	m.expense.Blur()

	var target *textinput.Model
	switch m.focus {
	case focusAddForm:
		target = []*textinput.Model{&m.name, &m.image}[m.field]
	case focusSplitForm:
		if m.field != fieldPayer {
			target = []*textinput.Model{&m.total, &m.expense}[m.field]
		}
	}
	if target == nil {
		return nil
	}
	return target.Focus()
}
