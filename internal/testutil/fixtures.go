package testutil

import (
	"embed"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// Fixture names.
const (
	// SandboxieUTF16 is a Sandboxie-Plus style config as Sandboxie writes
	// it: UTF-16LE with BOM and CRLF line endings. It already holds a
	// [Viber_Work] box.
	SandboxieUTF16 = "sandboxie_utf16le.ini"

	// SandboxieUTF8 has the same sections in UTF-8 with LF endings.
	SandboxieUTF8 = "sandboxie_utf8.ini"

	// Accounts is a registry with CRLF, a line without a separator, a
	// line with an extra field and a blank line.
	Accounts = "accounts.txt"
)

// MinimalINI is the smallest config discovery accepts.
const MinimalINI = "[GlobalSettings]\r\nEnabled=y\r\n"

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustLoadFixture is LoadFixture for package-level test vars.
func MustLoadFixture(name string) []byte {
	data, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return data
}
