package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Eat-'N-Split"))
	b.WriteString("\n")
	b.WriteString(m.summaryLine(snap))
	b.WriteString("\n\n")
	b.WriteString(m.friendList(snap))

	if snap.ShowAddFriend {
		b.WriteString("\n")
		b.WriteString(m.addForm())
	}
	b.WriteString("\n")
	if snap.ShowAddFriend {
		b.WriteString("[a] Close")
	} else {
		b.WriteString("[a] Add Friend")
	}
	b.WriteString("\n")

	if snap.Selected != nil {
		b.WriteString("\n")
		b.WriteString(m.splitForm(snap))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render(m.helpLine()))
	return b.String()
}

func (m *Model) summaryLine(snap widget.Snapshot) string {
	s := calculator.Summarize(snap.Friends)
	return Styles.Hint.Render(fmt.Sprintf("Owed to you: %s$  You owe: %s$",
		calculator.FormatMoney(s.TotalOwed), calculator.FormatMoney(s.TotalOwing)))
}

func (m *Model) friendList(snap widget.Snapshot) string {
	var b strings.Builder
	for i, f := range snap.Friends {
		prefix := "  "
		if i == m.cursor && m.focus == focusList {
			prefix = Styles.Cursor.Render("> ")
		}

		name := f.Name
		button := "[Select]"
		if snap.IsSelected(f.ID) {
			name = Styles.Selected.Render(name)
			button = "[Close]"
		}

		status := calculator.Describe(f.Name, f.Balance)
		fmt.Fprintf(&b, "%s%s  %s  %s\n", prefix, name, statusStyle(status.Kind).Render(status.Message), button)
	}
	return b.String()
}

func (m *Model) addForm() string {
	var b strings.Builder
	b.WriteString(m.label("Friend Name", m.field == fieldName))
	b.WriteString(" " + m.name.View() + "\n")
	b.WriteString(m.label("Image URL", m.field == fieldImage))
	b.WriteString(" " + m.image.View() + "\n")
	b.WriteString(Styles.Hint.Render("enter: add  esc: close"))
	return Styles.Box.Render(b.String())
}

func (m *Model) splitForm(snap widget.Snapshot) string {
	friend := snap.Selected.Name

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Split a bill with " + friend))
	b.WriteString("\n")
	b.WriteString(m.label("Bill Value", m.field == fieldTotal))
	b.WriteString(" " + m.total.View() + "\n")
	b.WriteString(m.label("Your expense", m.field == fieldExpense))
	b.WriteString(" " + m.expense.View() + "\n")
	b.WriteString(m.label(friend+" expense", false))
	b.WriteString(" " + snap.FriendExpense().String() + "\n")

	you, them := "You", friend
	if snap.Split.Payer == calculator.PayerFriend {
		them = "(" + them + ")"
	} else {
		you = "(" + you + ")"
	}
	b.WriteString(m.label("Who is paying the bill", m.field == fieldPayer))
	b.WriteString(" " + you + " / " + them + "\n")
	b.WriteString(Styles.Hint.Render("enter: split bill  esc: close"))
	return Styles.Box.Render(b.String())
}

func (m *Model) label(text string, focused bool) string {
	if focused && m.focus != focusList {
		return Styles.Focused.Render(text + ":")
	}
	return Styles.Label.Render(text + ":")
}

func (m *Model) helpLine() string {
	switch m.focus {
	case focusAddForm:
		return "tab: next field  enter: add  esc: close  ctrl+c: quit"
	case focusSplitForm:
		return "tab: next field  ←/→: payer  enter: split  esc: close  ctrl+c: quit"
	default:
		return "j/k: move  enter: select  a: add friend  q: quit"
	}
}

func statusStyle(k calculator.BalanceKind) lipgloss.Style {
	switch k {
	case calculator.BalanceUserOwes:
		return Styles.Owe
	case calculator.BalanceFriendOwes:
		return Styles.Owed
	}
	return Styles.Even
}
