package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/mitchellh/go-homedir"

	"github.com/firefly-engineering/viberbox/internal/boxname"
	"github.com/firefly-engineering/viberbox/internal/launcher"
)

const (
	// AppName names the state directory under the user config root.
	AppName = "viberbox"

	// StateDirEnv overrides the state directory.
	StateDirEnv = "VIBERBOX_STATE_DIR"

	SettingsFileName = "config.toml"
	AccountsFileName = "accounts.txt"
	AppPathFileName  = "viber_path.txt"
	AuditFileName    = "events.jsonl"
)

// maxReloadTimeout bounds how long a reload may block the menu.
const maxReloadTimeout = 5 * time.Minute

// boxPrefixRegex matches prefixes that leave room for an 8-character
// suffix within the 32-character Sandboxie box name limit.
var boxPrefixRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,23}$`)

var validSwitchPrefixes = map[string]bool{"/": true, "-": true, "--": true}

// Duration is a time.Duration that decodes from strings like "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Settings holds user-tunable options read from config.toml.
type Settings struct {
	BoxPrefix         string   `toml:"box_prefix"`
	SwitchPrefix      string   `toml:"switch_prefix"`
	ReloadTimeout     Duration `toml:"reload_timeout"`
	LauncherPath      string   `toml:"launcher_path"`       // Start.exe override
	SandboxConfigPath string   `toml:"sandbox_config_path"` // Sandboxie.ini override
	ApplicationPath   string   `toml:"application_path"`    // Viber.exe override
	LogFile           string   `toml:"log_file"`
}

// DefaultSettings returns settings matching a stock Sandboxie install.
func DefaultSettings() *Settings {
	return &Settings{
		BoxPrefix:     boxname.DefaultPrefix,
		SwitchPrefix:  launcher.DefaultSwitchPrefix,
		ReloadTimeout: Duration{launcher.DefaultReloadTimeout},
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if !boxPrefixRegex.MatchString(s.BoxPrefix) {
		return fmt.Errorf("invalid box_prefix %q: must start with a letter and contain only letters, digits, or underscores", s.BoxPrefix)
	}
	if !validSwitchPrefixes[s.SwitchPrefix] {
		return fmt.Errorf("invalid switch_prefix %q (must be /, - or --)", s.SwitchPrefix)
	}
	if s.ReloadTimeout.Duration <= 0 {
		return fmt.Errorf("reload_timeout must be positive (got %s)", s.ReloadTimeout.Duration)
	}
	if s.ReloadTimeout.Duration > maxReloadTimeout {
		return fmt.Errorf("reload_timeout must be at most %s (got %s)", maxReloadTimeout, s.ReloadTimeout.Duration)
	}
	return nil
}

// expandPaths resolves a leading ~ in every path setting. Other relative
// paths are taken from dir, the settings file's directory, and cannot
// climb out of it.
func (s *Settings) expandPaths(dir string) error {
	for _, p := range []*string{&s.LauncherPath, &s.SandboxConfigPath, &s.ApplicationPath, &s.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", *p, err)
		}
		if !isAbs(expanded) {
			expanded, err = securejoin.SecureJoin(dir, expanded)
			if err != nil {
				return fmt.Errorf("failed to resolve %q: %w", *p, err)
			}
		}
		*p = expanded
	}
	return nil
}

// isAbs also accepts Windows drive and UNC paths on every OS, since they
// are meant for Start.exe.
func isAbs(p string) bool {
	if filepath.IsAbs(p) || strings.HasPrefix(p, `\\`) {
		return true
	}
	if len(p) < 3 || p[1] != ':' || (p[2] != '\\' && p[2] != '/') {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}

// LoadSettings reads settings from path over the defaults.
// A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if _, err := toml.Decode(string(data), s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.expandPaths(filepath.Dir(path)); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes settings to path as TOML, creating the directory.
func SaveSettings(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return f.Close()
}

// Paths holds the configured paths
type Paths struct {
	StateDir     string
	SettingsFile string
	AccountsFile string
	AppPathFile  string
	AuditFile    string
}

// NewPaths lays out the state files under stateDir.
func NewPaths(stateDir string) *Paths {
	return &Paths{
		StateDir:     stateDir,
		SettingsFile: filepath.Join(stateDir, SettingsFileName),
		AccountsFile: filepath.Join(stateDir, AccountsFileName),
		AppPathFile:  filepath.Join(stateDir, AppPathFileName),
		AuditFile:    filepath.Join(stateDir, AuditFileName),
	}
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	return NewPaths(DefaultStateDir())
}

// DefaultStateDir returns $VIBERBOX_STATE_DIR, or the per-user config
// directory (%APPDATA% on Windows) joined with AppName.
func DefaultStateDir() string {
	if env := os.Getenv(StateDirEnv); env != "" {
		if expanded, err := homedir.Expand(env); err == nil {
			return expanded
		}
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName)
}
