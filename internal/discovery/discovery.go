// Package discovery locates Start.exe, Sandboxie.ini and Viber.exe on the
// local machine.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/resolve"
	"github.com/firefly-engineering/viberbox/internal/system"
)

const (
	LauncherExe = "Start.exe"
	ConfigFile  = "Sandboxie.ini"
	AppExe      = "Viber.exe"
)

// Overrides are explicit paths from the settings file. They are tried
// before any well-known location.
type Overrides struct {
	Launcher string
	Config   string
	App      string
}

// Locator resolves the three external paths the tool depends on.
type Locator struct {
	FS          system.FileSystem
	Getenv      func(string) string
	Cwd         string
	Overrides   Overrides
	AppPathFile string // remembered Viber.exe location
}

// NewLocator returns a Locator over the real environment.
func NewLocator(fsys system.FileSystem, overrides Overrides, appPathFile string) *Locator {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return &Locator{
		FS:          fsys,
		Getenv:      os.Getenv,
		Cwd:         cwd,
		Overrides:   overrides,
		AppPathFile: appPathFile,
	}
}

func (l *Locator) env(key string) string {
	if l.Getenv == nil {
		return ""
	}
	return l.Getenv(key)
}

func (l *Locator) programFiles() string    { return l.env("ProgramFiles") }
func (l *Locator) programFilesX86() string { return l.env("ProgramFiles(x86)") }

func (l *Locator) windowsDir() string {
	if dir := l.env("SystemRoot"); dir != "" {
		return dir
	}
	return l.env("windir")
}

// LauncherCandidates lists where Start.exe may live, best first.
func (l *Locator) LauncherCandidates() []string {
	var c resolve.Candidates
	c.Add(l.Overrides.Launcher).
		Under(l.Cwd, LauncherExe).
		Under(l.Cwd, "Sandboxie", "Resources", LauncherExe).
		Under(l.programFiles(), "Sandboxie-Plus", LauncherExe).
		Under(l.programFiles(), "Sandboxie", LauncherExe).
		Under(l.programFilesX86(), "Sandboxie", LauncherExe).
		Under(l.programFiles(), "MultiViberSandboxie", LauncherExe)
	return c.Paths()
}

// ConfigCandidates lists where Sandboxie.ini may live. launcher may be
// empty when Start.exe was not found.
func (l *Locator) ConfigCandidates(launcher string) []string {
	var c resolve.Candidates
	c.Add(l.Overrides.Config)
	if launcher != "" {
		c.Under(filepath.Dir(launcher), ConfigFile)
	}
	c.Under(l.Cwd, ConfigFile).
		Under(l.programFiles(), "Sandboxie-Plus", ConfigFile).
		Under(l.programFiles(), "Sandboxie", ConfigFile).
		Under(l.windowsDir(), ConfigFile)
	return c.Paths()
}

// AppCandidates lists where Viber.exe may live, best first.
func (l *Locator) AppCandidates() []string {
	var c resolve.Candidates
	c.Add(l.Overrides.App, l.SavedAppPath()).
		Under(l.programFiles(), "Viber", AppExe).
		Under(l.programFilesX86(), "Viber", AppExe).
		Under(l.env("LOCALAPPDATA"), "Viber", AppExe).
		Under(l.env("LOCALAPPDATA"), "Programs", "Viber", AppExe)
	return c.Paths()
}

// Launcher returns the Start.exe path.
func (l *Locator) Launcher() (string, error) {
	candidates := l.LauncherCandidates()
	if path, ok := resolve.First(candidates, l.FS.IsFile); ok {
		return path, nil
	}
	return "", errors.LauncherNotFound(candidates)
}

// Config returns the Sandboxie.ini path.
func (l *Locator) Config() (string, error) {
	launcher, _ := l.Launcher()
	candidates := l.ConfigCandidates(launcher)
	if path, ok := resolve.First(candidates, l.FS.IsFile); ok {
		return path, nil
	}
	return "", errors.ConfigFileNotFound(candidates)
}

// App returns the Viber.exe path.
func (l *Locator) App() (string, error) {
	if path, ok := resolve.First(l.AppCandidates(), l.FS.IsFile); ok {
		return path, nil
	}
	return "", errors.AppNotFound("")
}

// SavedAppPath returns the remembered application path, or "" if none.
func (l *Locator) SavedAppPath() string {
	if l.AppPathFile == "" {
		return ""
	}
	data, err := l.FS.ReadFile(l.AppPathFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveAppPath validates path and remembers it for later launches.
func (l *Locator) SaveAppPath(path string) error {
	path = strings.Trim(strings.TrimSpace(path), `"`)
	if path == "" || !l.FS.IsFile(path) {
		return errors.AppNotFound(path)
	}
	if l.AppPathFile == "" {
		return nil
	}
	if err := l.FS.MkdirAll(filepath.Dir(l.AppPathFile), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := l.FS.WriteFile(l.AppPathFile, []byte(path), 0644); err != nil {
		return fmt.Errorf("failed to save application path: %w", err)
	}
	logging.Debug("saved application path", "path", path, "file", l.AppPathFile)
	return nil
}

// Report describes every resolution for the paths command.
type Report struct {
	Launcher           string   `json:"launcher" yaml:"launcher"`
	LauncherCandidates []string `json:"launcherCandidates" yaml:"launcherCandidates"`
	Config             string   `json:"config" yaml:"config"`
	ConfigCandidates   []string `json:"configCandidates" yaml:"configCandidates"`
	App                string   `json:"app" yaml:"app"`
	AppCandidates      []string `json:"appCandidates" yaml:"appCandidates"`
}

// Report resolves everything without failing; unresolved paths are empty.
func (l *Locator) Report() Report {
	r := Report{
		LauncherCandidates: l.LauncherCandidates(),
		AppCandidates:      l.AppCandidates(),
	}
	r.Launcher, _ = l.Launcher()
	r.ConfigCandidates = l.ConfigCandidates(r.Launcher)
	r.Config, _ = l.Config()
	r.App, _ = l.App()
	return r
}
