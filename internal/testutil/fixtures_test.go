package testutil

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/firefly-engineering/viberbox/internal/config"
)

func TestLoadFixtures(t *testing.T) {
	utf16, err := LoadFixture(SandboxieUTF16)
	if err != nil {
		t.Fatalf("LoadFixture(%s) error: %v", SandboxieUTF16, err)
	}
	if !bytes.HasPrefix(utf16, []byte{0xFF, 0xFE}) {
		t.Error("UTF-16 fixture should start with a little-endian BOM")
	}

	utf8, err := LoadFixture(SandboxieUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(utf8), "[Viber_Work]\n") {
		t.Error("UTF-8 fixture should contain the Viber_Work section")
	}
	if strings.Contains(string(utf8), "\r\n") {
		t.Error("UTF-8 fixture should use LF")
	}

	if _, err := LoadFixture("missing.ini"); err == nil {
		t.Error("missing fixture should fail")
	}
}

func TestNewTestEnv(t *testing.T) {
	env := NewTestEnv(t)

	for _, p := range []string{env.StartExe, env.SandboxINI, env.ViberExe, env.Paths.SettingsFile} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should exist: %v", p, err)
		}
	}
	if env.ReadFile(env.SandboxINI) != MinimalINI {
		t.Error("Sandboxie.ini should start minimal")
	}
	if env.Accounts() != "" {
		t.Error("registry should start empty")
	}

	s, err := config.LoadSettings(env.Paths.SettingsFile)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LauncherPath != env.StartExe || s.ApplicationPath != env.ViberExe {
		t.Errorf("settings = %+v", s)
	}
}

func TestInstallFixture(t *testing.T) {
	env := NewTestEnv(t)
	env.InstallFixture(SandboxieUTF16)

	want := MustLoadFixture(SandboxieUTF16)
	if env.ReadFile(env.SandboxINI) != string(want) {
		t.Error("InstallFixture should copy the fixture byte for byte")
	}
}
