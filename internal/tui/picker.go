// Package tui provides terminal user interface components for viberbox
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/viberbox/internal/account"
)

// PickerResult holds the result of the account picker
type PickerResult struct {
	// Position is 1-based; zero when cancelled.
	Position int
	Account  account.Account
}

// Cancelled reports whether the user left without choosing.
func (r PickerResult) Cancelled() bool {
	return r.Position == 0
}

// accountItem implements list.Item for account display
type accountItem struct {
	position int
	account  account.Account
}

func (i accountItem) Title() string {
	return fmt.Sprintf("%d. %s", i.position, i.account.Name)
}

func (i accountItem) Description() string {
	return "sandbox " + i.account.BoxID
}

func (i accountItem) FilterValue() string {
	return i.account.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the account picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new account picker
func NewPicker(title string, accounts []account.Account) Model {
	items := make([]list.Item, len(accounts))
	for i, a := range accounts {
		items[i] = accountItem{position: i + 1, account: a}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 16)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(accountItem); ok {
				m.result = PickerResult{Position: item.position, Account: item.account}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc", "ctrl+c":
			m.result = PickerResult{}
			m.quitting = true
			return m, tea.Quit

		default:
			// Digits jump straight to a numbered account.
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.list.Items()) {
				item := m.list.Items()[n-1].(accountItem)
				m.result = PickerResult{Position: item.position, Account: item.account}
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [1-9] Jump  [/] Filter  [q] Back")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}
