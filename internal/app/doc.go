// Package app provides the application context for viberbox.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths           // State directory layout
//	    Settings *config.Settings        // Loaded config.toml
//	    FS       system.FileSystem       // File access
//	    Executor system.CommandExecutor  // Runs Start.exe
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New(app.WithPaths(paths), app.WithSettings(settings))
//
//	// Testing with fakes
//	a := app.New(
//	    app.WithPaths(config.NewPaths(t.TempDir())),
//	    app.WithFS(system.NewMockFS()),
//	    app.WithExecutor(system.NewMockExecutor()),
//	)
//
// # Wiring
//
// Manager builds the orchestrator from the registry store, the
// Sandboxie.ini adapter, discovery and a launcher factory that applies
// the switch prefix and reload timeout from Settings.
package app
