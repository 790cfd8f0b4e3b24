// Package tui provides terminal user interface components for viberbox.
//
// This package uses the Bubble Tea framework for the interactive menu that
// runs when viberbox is started without a subcommand.
//
// # Components
//
//   - MenuModel: numbered main menu (Add, List, Launch, Delete, Exit)
//   - Model: account picker built on bubbles/list, with filtering
//   - PromptModel: single line input built on bubbles/textinput
//   - ConfirmModel: y/n question
//
// # Prompter
//
// Commands talk to the user through the Prompter interface:
//
//	var p tui.Prompter = tui.NewInteractive()
//	if !term.IsTerminal(int(os.Stdin.Fd())) {
//	    p = tui.NewPlain(os.Stdin, os.Stdout)
//	}
//	choice, err := p.Menu(mgr.Count())
//
// Interactive runs one Bubble Tea program per question; Plain reads lines
// and is what scripts and pipes get.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
