package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenu_NumberKeys(t *testing.T) {
	tests := []struct {
		key  string
		want MenuChoice
	}{
		{"1", ChoiceAdd},
		{"2", ChoiceList},
		{"3", ChoiceLaunch},
		{"4", ChoiceDelete},
		{"5", ChoiceExit},
		{"q", ChoiceExit},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewMenu(0)
			newModel, cmd := m.Update(runes(tt.key))

			if got := newModel.(MenuModel).Choice(); got != tt.want {
				t.Errorf("Choice() = %v, want %v", got, tt.want)
			}
			if cmd == nil {
				t.Error("Should return tea.Quit command")
			}
		})
	}
}

func TestMenu_Cursor(t *testing.T) {
	var m tea.Model = NewMenu(2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.(MenuModel).Choice(); got != ChoiceList {
		t.Errorf("Choice() = %v, want %v", got, ChoiceList)
	}
}

func TestMenu_CursorBounds(t *testing.T) {
	var m tea.Model = NewMenu(0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.(MenuModel).cursor; got != len(menuLabels)-1 {
		t.Errorf("cursor = %d, want %d", got, len(menuLabels)-1)
	}
}

func TestMenu_IgnoresOtherKeys(t *testing.T) {
	m := NewMenu(0)
	newModel, cmd := m.Update(runes("x"))

	if newModel.(MenuModel).Choice() != ChoiceNone || cmd != nil {
		t.Error("unknown key should do nothing")
	}
}

func TestMenu_View(t *testing.T) {
	view := NewMenu(3).View()

	for _, want := range []string{"3 account(s)", "1. Add account", "5. Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestMenuChoice_String(t *testing.T) {
	if ChoiceLaunch.String() != "Launch account" {
		t.Errorf("String() = %q", ChoiceLaunch.String())
	}
	if ChoiceNone.String() != "none" {
		t.Errorf("String() = %q", ChoiceNone.String())
	}
}
