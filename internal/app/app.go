// Package app provides the application context for viberbox.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/viberbox/internal/account"
	"github.com/firefly-engineering/viberbox/internal/audit"
	"github.com/firefly-engineering/viberbox/internal/config"
	"github.com/firefly-engineering/viberbox/internal/discovery"
	"github.com/firefly-engineering/viberbox/internal/launcher"
	"github.com/firefly-engineering/viberbox/internal/manager"
	"github.com/firefly-engineering/viberbox/internal/sandboxie"
	"github.com/firefly-engineering/viberbox/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the state directory layout
	Paths *config.Paths

	// Settings is the loaded config.toml
	Settings *config.Settings

	// FS is used for every file the tool reads or writes
	FS system.FileSystem

	// Executor runs Start.exe
	Executor system.CommandExecutor

	// Getenv overrides environment lookups during discovery
	Getenv func(string) string
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithSettings sets the settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithFS sets a custom filesystem
func WithFS(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithGetenv sets the environment lookup used by discovery
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) {
		a.Getenv = getenv
	}
}

// New creates a new App with the given options.
// Anything not provided falls back to the real environment and default
// settings.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Paths == nil {
		app.Paths = config.DefaultPaths()
	}
	if app.Settings == nil {
		app.Settings = config.DefaultSettings()
	}
	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}

	return app
}

// Locator returns path discovery configured from the settings overrides.
func (a *App) Locator() *discovery.Locator {
	l := discovery.NewLocator(a.FS, discovery.Overrides{
		Launcher: a.Settings.LauncherPath,
		Config:   a.Settings.SandboxConfigPath,
		App:      a.Settings.ApplicationPath,
	}, a.Paths.AppPathFile)
	if a.Getenv != nil {
		l.Getenv = a.Getenv
	}
	return l
}

// Store returns the account registry store.
func (a *App) Store() *account.Store {
	return account.NewStore(a.Paths.AccountsFile, a.FS)
}

// Audit returns the event log.
func (a *App) Audit() *audit.Logger {
	return audit.NewLogger(a.Paths.AuditFile)
}

// Launcher returns a Start.exe driver using the direct-then-shell runner.
func (a *App) Launcher(exe string) *launcher.Sandboxie {
	l := launcher.NewSandboxie(exe, launcher.Default(a.Executor))
	l.SwitchPrefix = a.Settings.SwitchPrefix
	l.ReloadTimeout = a.Settings.ReloadTimeout.Duration
	return l
}

// Manager loads the registry and wires the orchestrator. prompt may be
// nil, in which case a missing Viber.exe is an error.
func (a *App) Manager(prompt manager.AppPrompt) (*manager.Manager, error) {
	return manager.New(
		a.Store(),
		sandboxie.NewAdapter(a.FS),
		a.Locator(),
		func(exe string) manager.Launcher { return a.Launcher(exe) },
		manager.WithBoxPrefix(a.Settings.BoxPrefix),
		manager.WithAuditor(a.Audit()),
		manager.WithAppPrompt(prompt),
	)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
