package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/viberbox/internal/account"
)

// Prompter is everything the interactive menu asks the user.
type Prompter interface {
	Menu(accounts int) (MenuChoice, error)
	PickAccount(title string, accounts []account.Account) (PickerResult, error)
	// Text returns false when the user cancelled.
	Text(label, placeholder string, validate func(string) error) (string, bool, error)
	Confirm(question string) (bool, error)
}

// Interactive runs each question as a Bubble Tea program.
type Interactive struct {
	opts []tea.ProgramOption
}

// NewInteractive returns a Prompter for a real terminal.
func NewInteractive(opts ...tea.ProgramOption) *Interactive {
	return &Interactive{opts: opts}
}

func (p *Interactive) run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, p.opts...).Run()
}

func (p *Interactive) Menu(accounts int) (MenuChoice, error) {
	final, err := p.run(NewMenu(accounts))
	if err != nil {
		return ChoiceNone, err
	}
	return final.(MenuModel).Choice(), nil
}

func (p *Interactive) PickAccount(title string, accounts []account.Account) (PickerResult, error) {
	if len(accounts) == 0 {
		return PickerResult{}, nil
	}
	final, err := p.run(NewPicker(title, accounts))
	if err != nil {
		return PickerResult{}, err
	}
	return final.(Model).Result(), nil
}

func (p *Interactive) Text(label, placeholder string, validate func(string) error) (string, bool, error) {
	final, err := p.run(NewPrompt(label, placeholder, validate))
	if err != nil {
		return "", false, err
	}
	v, ok := final.(PromptModel).Value()
	return v, ok, nil
}

func (p *Interactive) Confirm(question string) (bool, error) {
	final, err := p.run(NewConfirm(question))
	if err != nil {
		return false, err
	}
	return final.(ConfirmModel).Confirmed(), nil
}

// Plain asks line by line. Used when stdin is not a terminal.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlain returns a line-based Prompter.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. io.EOF only when nothing was read.
func (p *Plain) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Plain) Menu(accounts int) (MenuChoice, error) {
	fmt.Fprintf(p.out, "\nViber multi-account launcher (%d account(s))\n", accounts)
	for i, l := range menuLabels {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, l.label)
	}
	fmt.Fprint(p.out, "Choose an option: ")

	line, err := p.readLine()
	if err == io.EOF {
		return ChoiceExit, nil
	}
	if err != nil {
		return ChoiceNone, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(menuLabels) {
		return ChoiceNone, nil
	}
	return menuLabels[n-1].choice, nil
}

// PickAccount returns Position -1 for input that is not a number so the
// caller reports it like any other out-of-range choice.
func (p *Plain) PickAccount(title string, accounts []account.Account) (PickerResult, error) {
	if len(accounts) == 0 {
		return PickerResult{}, nil
	}
	fmt.Fprintln(p.out, title)
	fmt.Fprint(p.out, SimpleList(accounts))
	fmt.Fprint(p.out, "Enter number (empty to cancel): ")

	line, err := p.readLine()
	if err == io.EOF || (err == nil && line == "") {
		return PickerResult{}, nil
	}
	if err != nil {
		return PickerResult{}, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return PickerResult{Position: -1}, nil
	}
	res := PickerResult{Position: n}
	if n >= 1 && n <= len(accounts) {
		res.Account = accounts[n-1]
	}
	return res, nil
}

func (p *Plain) Text(label, placeholder string, validate func(string) error) (string, bool, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.readLine()
	if err == io.EOF {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if validate != nil {
		if err := validate(line); err != nil {
			return "", false, err
		}
	}
	return line, true, nil
}

func (p *Plain) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	line, err := p.readLine()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// SimpleList renders accounts as a numbered list.
func SimpleList(accounts []account.Account) string {
	if len(accounts) == 0 {
		return "No accounts registered.\n"
	}

	var sb strings.Builder
	for i, a := range accounts {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, a.Name, a.BoxID))
	}
	return sb.String()
}
