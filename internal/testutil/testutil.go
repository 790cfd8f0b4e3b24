// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/viberbox/internal/config"
	"github.com/firefly-engineering/viberbox/internal/system"
)

// TestEnv is a fake Sandboxie and Viber install under a temp directory,
// with settings pointing discovery at it and a mock executor in place of
// Start.exe.
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Paths    *config.Paths
	Settings *config.Settings
	Executor *system.MockExecutor

	StartExe   string
	SandboxINI string
	ViberExe   string
}

// NewTestEnv creates the install with MinimalINI and writes config.toml.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	sbieDir := filepath.Join(tmpDir, "Sandboxie-Plus")

	env := &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		Paths:      config.NewPaths(filepath.Join(tmpDir, "state")),
		Executor:   system.NewMockExecutor(),
		StartExe:   filepath.Join(sbieDir, "Start.exe"),
		SandboxINI: filepath.Join(sbieDir, "Sandboxie.ini"),
		ViberExe:   filepath.Join(tmpDir, "Viber", "Viber.exe"),
	}

	for _, dir := range []string{env.Paths.StateDir, sbieDir, filepath.Dir(env.ViberExe)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	env.WriteFile(env.StartExe, nil)
	env.WriteFile(env.ViberExe, nil)
	env.WriteFile(env.SandboxINI, []byte(MinimalINI))

	env.Settings = config.DefaultSettings()
	env.Settings.LauncherPath = env.StartExe
	env.Settings.SandboxConfigPath = env.SandboxINI
	env.Settings.ApplicationPath = env.ViberExe
	env.SaveSettings()

	return env
}

// SaveSettings writes env.Settings to config.toml.
func (e *TestEnv) SaveSettings() {
	e.T.Helper()
	if err := config.SaveSettings(e.Paths.SettingsFile, e.Settings); err != nil {
		e.T.Fatalf("Failed to write settings: %v", err)
	}
}

// InstallFixture replaces Sandboxie.ini with a fixture.
func (e *TestEnv) InstallFixture(name string) {
	e.T.Helper()
	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	e.WriteFile(e.SandboxINI, data)
}

// WriteFile writes data to path or fails the test.
func (e *TestEnv) WriteFile(path string, data []byte) {
	e.T.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the contents of path, or "" if it does not exist.
func (e *TestEnv) ReadFile(path string) string {
	e.T.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Accounts returns the raw registry file.
func (e *TestEnv) Accounts() string {
	e.T.Helper()
	return e.ReadFile(e.Paths.AccountsFile)
}
