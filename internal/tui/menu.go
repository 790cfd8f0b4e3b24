package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceAdd
	ChoiceList
	ChoiceLaunch
	ChoiceDelete
	ChoiceExit
)

var menuLabels = []struct {
	choice MenuChoice
	label  string
}{
	{ChoiceAdd, "Add account"},
	{ChoiceList, "List accounts"},
	{ChoiceLaunch, "Launch account"},
	{ChoiceDelete, "Delete account"},
	{ChoiceExit, "Exit"},
}

func (c MenuChoice) String() string {
	for _, l := range menuLabels {
		if l.choice == c {
			return l.label
		}
	}
	return "none"
}

// MenuModel is the main menu. Entries are numbered 1-5 and can be picked
// with the number keys or with the cursor.
type MenuModel struct {
	cursor   int
	accounts int
	choice   MenuChoice
	quitting bool
}

// NewMenu returns the main menu. accounts is shown in the header.
func NewMenu(accounts int) MenuModel {
	return MenuModel{accounts: accounts}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(menuLabels[m.cursor].choice)
	case "q", "esc", "ctrl+c":
		return m.choose(ChoiceExit)
	case "1", "2", "3", "4", "5":
		return m.choose(menuLabels[key.Runes[0]-'1'].choice)
	}
	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	m.quitting = true
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Viber multi-account launcher"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d account(s) registered", m.accounts)))
	b.WriteString("\n\n")

	for i, l := range menuLabels {
		line := fmt.Sprintf("%d. %s", i+1, l.label)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[1-5] Choose  [enter] Select  [q] Exit"))
	return b.String()
}

// Choice returns the selected entry, ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}
