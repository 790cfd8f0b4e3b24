// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Files are embedded using go:embed:
//
//	fixtures/sandboxie_utf16le.ini  (UTF-16LE + BOM, CRLF, as Sandboxie writes it)
//	fixtures/sandboxie_utf8.ini     (same sections, UTF-8, LF)
//	fixtures/accounts.txt           (registry with malformed lines)
//
//	data, err := testutil.LoadFixture(testutil.SandboxieUTF16)
//
// # Test Environment
//
// NewTestEnv lays out a fake install in t.TempDir(): Start.exe,
// Sandboxie.ini, Viber.exe and a config.toml whose overrides point at them.
// Start.exe is never run; Executor records what would have been.
//
//	env := testutil.NewTestEnv(t)
//	env.InstallFixture(testutil.SandboxieUTF16)
//	a := app.New(
//	    app.WithPaths(env.Paths),
//	    app.WithSettings(env.Settings),
//	    app.WithExecutor(env.Executor),
//	)
package testutil
