package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a yes/no question. Anything but y is a no.
type ConfirmModel struct {
	question  string
	confirmed bool
	quitting  bool
}

// NewConfirm returns a y/n confirmation.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.confirmed = false
	default:
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.quitting {
		return ""
	}
	return titleStyle.Render(m.question) + "\n" + helpStyle.Render("[y] Yes  [n] No")
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}
