// Package account persists the registry of Viber profiles.
//
// The registry is a plain text file with one "name|box" record per line,
// LF-terminated, in display order. There is no header and no escaping;
// names containing '|' are rejected before they reach the store.
package account

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/system"
)

// Separator splits the fields of a registry record.
const Separator = "|"

// Account is one Viber profile and the Sandboxie box that hosts it.
type Account struct {
	Name  string `json:"name" yaml:"name"`
	BoxID string `json:"box" yaml:"box"`
}

// Store reads and writes the registry file.
type Store struct {
	path string
	fs   system.FileSystem
}

// NewStore returns a Store for the registry at path. A nil fs uses the OS.
func NewStore(path string, fsys system.FileSystem) *Store {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Store{path: path, fs: fsys}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing file is an empty registry.
func (s *Store) Load() ([]Account, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Account{}, nil
		}
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return Parse(data), nil
}

// Save rewrites the whole registry. The file is written next to its final
// location and renamed into place, so a crash leaves either the old or the
// new registry.
func (s *Store) Save(accounts []Account) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create accounts directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, Format(accounts), 0644); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		if rmErr := s.fs.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			logging.Debug("failed to remove temp accounts file", "path", tmp, "error", rmErr)
		}
		return fmt.Errorf("failed to replace accounts: %w", err)
	}
	return nil
}

// Parse decodes registry content. Lines with fewer than two fields are
// skipped, a trailing CR is dropped and fields past the second are ignored.
func Parse(data []byte) []Account {
	accounts := []Account{}
	for i, line := range bytes.Split(data, []byte("\n")) {
		text := strings.TrimSuffix(string(line), "\r")
		parts := strings.Split(text, Separator)
		if len(parts) < 2 {
			if text != "" {
				logging.Debug("skipping malformed account record", "line", i+1)
			}
			continue
		}
		accounts = append(accounts, Account{Name: parts[0], BoxID: parts[1]})
	}
	return accounts
}

// Format encodes accounts as registry content.
func Format(accounts []Account) []byte {
	var b bytes.Buffer
	for _, a := range accounts {
		b.WriteString(a.Name)
		b.WriteString(Separator)
		b.WriteString(a.BoxID)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Exists reports whether name, trimmed, matches an account case-insensitively.
func Exists(accounts []Account, name string) bool {
	_, ok := Find(accounts, name)
	return ok
}

// Find returns the index of the account named name (trimmed,
// case-insensitive).
func Find(accounts []Account, name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, a := range accounts {
		if strings.EqualFold(a.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// HasBox reports whether any account uses box (case-insensitive, matching
// how Sandboxie compares section names).
func HasBox(accounts []Account, box string) bool {
	for _, a := range accounts {
		if strings.EqualFold(a.BoxID, box) {
			return true
		}
	}
	return false
}
