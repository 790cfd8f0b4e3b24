package manager

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/firefly-engineering/viberbox/internal/account"
	"github.com/firefly-engineering/viberbox/internal/audit"
	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/sandboxie"
	"github.com/firefly-engineering/viberbox/internal/system"
)

const (
	iniPath      = "/sbie/Sandboxie.ini"
	accountsPath = "/state/accounts.txt"
	startExe     = "/sbie/Start.exe"
	viberExe     = "/apps/Viber/Viber.exe"
	baseINI      = "[GlobalSettings]\r\nEnabled=y\r\n"
)

type fakeLocator struct {
	fs       *system.MockFS
	launcher string
	app      string
}

func (l *fakeLocator) Launcher() (string, error) {
	if l.launcher == "" {
		return "", errors.LauncherNotFound(nil)
	}
	return l.launcher, nil
}

func (l *fakeLocator) Config() (string, error) {
	if !l.fs.IsFile(iniPath) {
		return "", errors.ConfigFileNotFound([]string{iniPath})
	}
	return iniPath, nil
}

func (l *fakeLocator) App() (string, error) {
	if l.app == "" {
		return "", errors.AppNotFound("")
	}
	return l.app, nil
}

func (l *fakeLocator) SaveAppPath(path string) error {
	if !l.fs.IsFile(path) {
		return errors.AppNotFound(path)
	}
	l.app = path
	return nil
}

type fakeLauncher struct {
	exe       string
	reloads   int
	runs      []string
	reloadErr error
	runErr    error
}

func (l *fakeLauncher) Reload(ctx context.Context) error {
	l.reloads++
	return l.reloadErr
}

func (l *fakeLauncher) RunInBox(ctx context.Context, box, app string) error {
	l.runs = append(l.runs, box+" "+app)
	return l.runErr
}

type fakeAuditor struct {
	events []audit.Event
}

func (a *fakeAuditor) LogEvent(t audit.EventType, acct, box, details string) error {
	a.events = append(a.events, audit.Event{Type: t, Account: acct, Box: box, Details: details})
	return nil
}

func (a *fakeAuditor) types() []audit.EventType {
	var out []audit.EventType
	for _, e := range a.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	fs       *system.MockFS
	locator  *fakeLocator
	launcher *fakeLauncher
	auditor  *fakeAuditor
	mgr      *Manager
}

func newFixture(t *testing.T, registry, ini string) *fixture {
	t.Helper()
	fsys := system.NewMockFS()
	if registry != "" {
		fsys.AddFile(accountsPath, []byte(registry), 0644)
	}
	if ini != "" {
		fsys.AddFile(iniPath, []byte(ini), 0644)
	}
	fsys.AddFile(startExe, nil, 0755)
	fsys.AddFile(viberExe, nil, 0755)

	f := &fixture{
		fs:       fsys,
		locator:  &fakeLocator{fs: fsys, launcher: startExe, app: viberExe},
		launcher: &fakeLauncher{},
		auditor:  &fakeAuditor{},
	}

	mgr, err := New(
		account.NewStore(accountsPath, fsys),
		sandboxie.NewAdapter(fsys),
		f.locator,
		func(exe string) Launcher {
			f.launcher.exe = exe
			return f.launcher
		},
		WithAuditor(f.auditor),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f.mgr = mgr
	return f
}

func (f *fixture) ini(t *testing.T) string {
	t.Helper()
	data, ok := f.fs.GetFile(iniPath)
	if !ok {
		t.Fatal("Sandboxie.ini missing")
	}
	return string(data)
}

func (f *fixture) registry() string {
	data, _ := f.fs.GetFile(accountsPath)
	return string(data)
}

func TestNew_LoadError(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.ReadFileErr = stderrors.New("disk gone")

	_, err := New(account.NewStore(accountsPath, fsys), sandboxie.NewAdapter(fsys), &fakeLocator{fs: fsys}, nil)
	if err == nil {
		t.Fatal("New() should fail when the registry cannot be read")
	}
}

func TestAdd(t *testing.T) {
	f := newFixture(t, "", baseINI)

	res, err := f.mgr.Add(context.Background(), "  Work  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if res.Account.Name != "Work" || res.Account.BoxID != "Viber_Work" {
		t.Errorf("Account = %+v", res.Account)
	}
	if !res.SectionAdded {
		t.Error("SectionAdded = false, want true")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if f.launcher.reloads != 1 {
		t.Errorf("reloads = %d, want 1", f.launcher.reloads)
	}
	if f.launcher.exe != startExe {
		t.Errorf("launcher exe = %q, want %q", f.launcher.exe, startExe)
	}
	if !strings.Contains(f.ini(t), "\r\n[Viber_Work]\r\nEnabled=y\r\nAutoDelete=y\r\n") {
		t.Errorf("ini missing new section: %q", f.ini(t))
	}
	if got := f.registry(); got != "Work|Viber_Work\n" {
		t.Errorf("registry = %q", got)
	}
	if got := f.mgr.List(); len(got) != 1 || got[0] != res.Account {
		t.Errorf("List() = %+v", got)
	}
	if types := f.auditor.types(); len(types) != 1 || types[0] != audit.EventAdd {
		t.Errorf("audit events = %v, want [add]", types)
	}
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind errors.Kind
	}{
		{"blank", "   ", errors.KindEmptyName},
		{"empty", "", errors.KindEmptyName},
		{"pipe", "Work|Home", errors.KindInvalidName},
		{"newline", "Work\nHome", errors.KindInvalidName},
		{"duplicate different case", "work", errors.KindDuplicateName},
		{"duplicate padded", " Work ", errors.KindDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "Work|Viber_Work\n", baseINI+"\r\n[Viber_Work]\r\nEnabled=y\r\n")
			iniBefore := f.ini(t)

			_, err := f.mgr.Add(context.Background(), tt.input)
			if !errors.IsKind(err, tt.wantKind) {
				t.Fatalf("Add(%q) error = %v, want kind %s", tt.input, err, tt.wantKind)
			}
			if f.mgr.Count() != 1 {
				t.Errorf("Count() = %d, want 1", f.mgr.Count())
			}
			if f.ini(t) != iniBefore {
				t.Error("config must be untouched after a rejected add")
			}
			if f.registry() != "Work|Viber_Work\n" {
				t.Errorf("registry changed: %q", f.registry())
			}
		})
	}
}

func TestAdd_NoConfigPersistsNothing(t *testing.T) {
	f := newFixture(t, "", "")

	_, err := f.mgr.Add(context.Background(), "Work")
	if !errors.IsKind(err, errors.KindConfigFileNotFound) {
		t.Fatalf("Add() error = %v, want config-not-found", err)
	}
	if f.mgr.Count() != 0 {
		t.Errorf("Count() = %d, want 0", f.mgr.Count())
	}
	if f.fs.Exists(accountsPath) {
		t.Error("registry must not be written when the config is missing")
	}
	if f.launcher.reloads != 0 {
		t.Error("no reload expected")
	}
}

func TestAdd_SectionAlreadyPresent(t *testing.T) {
	ini := baseINI + "\r\n[Viber_Work]\r\nEnabled=y\r\n"
	f := newFixture(t, "", ini)

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if res.SectionAdded {
		t.Error("SectionAdded = true for an existing section")
	}
	if f.launcher.reloads != 0 {
		t.Errorf("reloads = %d, want 0", f.launcher.reloads)
	}
	if f.ini(t) != ini {
		t.Error("existing section must not be duplicated")
	}
	if f.mgr.Count() != 1 {
		t.Errorf("Count() = %d, want 1", f.mgr.Count())
	}
}

func TestAdd_DerivedCollision(t *testing.T) {
	f := newFixture(t, "", baseINI)

	first, err := f.mgr.Add(context.Background(), "Work!")
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.mgr.Add(context.Background(), "Work?")
	if err != nil {
		t.Fatal(err)
	}

	if first.Account.BoxID != "Viber_Work" || second.Account.BoxID != "Viber_Work_2" {
		t.Errorf("box ids = %q, %q; want Viber_Work, Viber_Work_2", first.Account.BoxID, second.Account.BoxID)
	}
	if n := strings.Count(f.ini(t), "[Viber_Work"); n != 2 {
		t.Errorf("found %d Viber_Work sections, want 2", n)
	}
}

func TestAdd_ReloadFailureIsWarning(t *testing.T) {
	f := newFixture(t, "", baseINI)
	f.launcher.reloadErr = stderrors.New("service not running")

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "service not running") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if f.mgr.Count() != 1 {
		t.Error("account should persist despite reload failure")
	}
	if types := f.auditor.types(); len(types) != 2 || types[0] != audit.EventWarning || types[1] != audit.EventAdd {
		t.Errorf("audit events = %v, want [warning add]", types)
	}
}

func TestAdd_WarningsStayOffTheConsole(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(false, false, &buf)
	t.Cleanup(func() { logging.Setup(false, false, nil) })

	f := newFixture(t, "", baseINI)
	f.launcher.reloadErr = stderrors.New("service not running")

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want 1", res.Warnings)
	}
	// The caller prints res.Warnings; the log must not repeat them.
	if strings.Contains(buf.String(), "service not running") {
		t.Errorf("log output = %q, warning printed twice", buf.String())
	}
}

func TestAdd_ReservedPrefix(t *testing.T) {
	f := newFixture(t, "", baseINI)
	WithBoxPrefix("Template_")(f.mgr)

	_, err := f.mgr.Add(context.Background(), "Office")
	if !errors.IsKind(err, errors.KindInvalidBox) {
		t.Fatalf("Add() error = %v, want invalid-box", err)
	}
	if f.ini(t) != baseINI || f.registry() != "" || f.launcher.reloads != 0 {
		t.Error("nothing should change")
	}
}

func TestAdd_NoLauncherIsWarning(t *testing.T) {
	f := newFixture(t, "", baseINI)
	f.locator.launcher = ""

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "reload") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}

func TestAdd_ConfigWriteFailureIsWarning(t *testing.T) {
	f := newFixture(t, "", baseINI)
	f.fs.WriteErrs[iniPath] = stderrors.New("access denied")

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if res.SectionAdded {
		t.Error("SectionAdded should be false when the write failed")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "access denied") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if f.launcher.reloads != 0 {
		t.Error("nothing changed on disk, no reload expected")
	}
	if f.registry() != "Work|Viber_Work\n" {
		t.Errorf("registry = %q", f.registry())
	}
}

func TestAdd_PersistFailureRollsBack(t *testing.T) {
	f := newFixture(t, "Home|Viber_Home\n", baseINI)
	f.fs.RenameErr = stderrors.New("sharing violation")

	_, err := f.mgr.Add(context.Background(), "Work")
	if !errors.IsKind(err, errors.KindPersistenceFailure) {
		t.Fatalf("Add() error = %v, want persistence failure", err)
	}
	if got := f.mgr.List(); len(got) != 1 || got[0].Name != "Home" {
		t.Errorf("List() = %+v, want only Home", got)
	}
	if f.registry() != "Home|Viber_Home\n" {
		t.Errorf("registry = %q, want unchanged", f.registry())
	}
}

func TestLaunch(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"\r\n[Viber_Work]\r\nEnabled=y\r\n")

	res, err := f.mgr.Launch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if res.Healed {
		t.Error("Healed = true, section was present")
	}
	if f.launcher.reloads != 0 {
		t.Errorf("reloads = %d, want 0", f.launcher.reloads)
	}
	if len(f.launcher.runs) != 1 || f.launcher.runs[0] != "Viber_Work "+viberExe {
		t.Errorf("runs = %v", f.launcher.runs)
	}
	if types := f.auditor.types(); len(types) != 1 || types[0] != audit.EventLaunch {
		t.Errorf("audit events = %v, want [launch]", types)
	}
}

func TestLaunch_SelfHeal(t *testing.T) {
	// Sandboxie's UI dropped the section; the account survived.
	f := newFixture(t, "Work|Viber_Work\n", baseINI)

	res, err := f.mgr.Launch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if !res.Healed || !res.SectionAdded {
		t.Errorf("Healed = %v, SectionAdded = %v; want both true", res.Healed, res.SectionAdded)
	}
	if n := strings.Count(f.ini(t), "[Viber_Work]"); n != 1 {
		t.Errorf("found %d Viber_Work sections, want 1", n)
	}
	if f.launcher.reloads != 1 {
		t.Errorf("reloads = %d, want 1", f.launcher.reloads)
	}
	if len(f.launcher.runs) != 1 {
		t.Errorf("runs = %v, want one launch", f.launcher.runs)
	}
	if types := f.auditor.types(); len(types) != 2 || types[0] != audit.EventHeal || types[1] != audit.EventLaunch {
		t.Errorf("audit events = %v, want [heal launch]", types)
	}
}

func TestLaunch_UnusableBox(t *testing.T) {
	tests := []struct {
		name     string
		registry string
	}{
		{"empty box", "Bob|\n"},
		{"global settings", "Bob|GlobalSettings\n"},
		{"user settings", "Bob|UserSettings_054A02CE\n"},
		{"space in box", "Bob|Viber Bob\n"},
		{"bracket in box", "Bob|Viber]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.registry, baseINI)

			_, err := f.mgr.Launch(context.Background(), 1)
			if !errors.IsKind(err, errors.KindInvalidBox) {
				t.Fatalf("Launch() error = %v, want invalid-box", err)
			}
			if f.ini(t) != baseINI {
				t.Errorf("ini = %q, must be untouched", f.ini(t))
			}
			if f.launcher.reloads != 0 || len(f.launcher.runs) != 0 {
				t.Errorf("reloads = %d, runs = %v; want none", f.launcher.reloads, f.launcher.runs)
			}
		})
	}
}

func TestLaunch_OutOfRange(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI)

	for _, pos := range []int{0, -1, 2} {
		if _, err := f.mgr.Launch(context.Background(), pos); !errors.IsKind(err, errors.KindOutOfRange) {
			t.Errorf("Launch(%d) error = %v, want out-of-range", pos, err)
		}
	}
	if len(f.launcher.runs) != 0 {
		t.Error("nothing should launch")
	}
}

func TestLaunch_NoConfig(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", "")

	if _, err := f.mgr.Launch(context.Background(), 1); !errors.IsKind(err, errors.KindConfigFileNotFound) {
		t.Errorf("Launch() error = %v, want config-not-found", err)
	}
	if len(f.launcher.runs) != 0 {
		t.Error("nothing should launch")
	}
}

func TestLaunch_AppNotFound(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.locator.app = ""

	if _, err := f.mgr.Launch(context.Background(), 1); !errors.IsKind(err, errors.KindAppNotFound) {
		t.Errorf("Launch() error = %v, want app-not-found", err)
	}
}

func TestLaunch_AppPrompt(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.locator.app = ""

	asked := 0
	WithAppPrompt(func(ctx context.Context) (string, error) {
		asked++
		return viberExe, nil
	})(f.mgr)

	if _, err := f.mgr.Launch(context.Background(), 1); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if asked != 1 {
		t.Errorf("prompt called %d times, want 1", asked)
	}
	if f.locator.app != viberExe {
		t.Errorf("app path not saved: %q", f.locator.app)
	}

	// Second launch uses the saved path.
	if _, err := f.mgr.Launch(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if asked != 1 {
		t.Errorf("prompt called %d times after saving, want 1", asked)
	}
}

func TestLaunch_AppPromptInvalidPath(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.locator.app = ""
	WithAppPrompt(func(ctx context.Context) (string, error) {
		return "/nowhere/Viber.exe", nil
	})(f.mgr)

	if _, err := f.mgr.Launch(context.Background(), 1); !errors.IsKind(err, errors.KindAppNotFound) {
		t.Errorf("Launch() error = %v, want app-not-found", err)
	}
}

func TestLaunch_LaunchFailureIsWarning(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.launcher.runErr = stderrors.New("direct: denied; shell: denied")

	res, err := f.mgr.Launch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Launch() error = %v, want warning only", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "Failed to launch") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}

func TestLaunch_NoLauncher(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.locator.launcher = ""

	if _, err := f.mgr.Launch(context.Background(), 1); !errors.IsKind(err, errors.KindLauncherNotFound) {
		t.Errorf("Launch() error = %v, want launcher-not-found", err)
	}
}

func TestDelete_NotConfirmed(t *testing.T) {
	ini := baseINI + "\r\n[Viber_Work]\r\nEnabled=y\r\n"
	f := newFixture(t, "Work|Viber_Work\n", ini)

	_, err := f.mgr.Delete(context.Background(), 1, false)
	if !errors.IsKind(err, errors.KindNotConfirmed) {
		t.Fatalf("Delete() error = %v, want not-confirmed", err)
	}
	if f.mgr.Count() != 1 || f.ini(t) != ini || f.registry() != "Work|Viber_Work\n" {
		t.Error("unconfirmed delete must change nothing")
	}
}

func TestDelete(t *testing.T) {
	ini := baseINI + "\r\n[Viber_Work]\r\nEnabled=y\r\n\r\n[Viber_Home]\r\nEnabled=y\r\n"
	f := newFixture(t, "Work|Viber_Work\nHome|Viber_Home\n", ini)

	res, err := f.mgr.Delete(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !res.SectionRemoved {
		t.Error("SectionRemoved = false, want true")
	}
	if f.launcher.reloads != 1 {
		t.Errorf("reloads = %d, want 1", f.launcher.reloads)
	}
	if got := f.ini(t); strings.Contains(got, "Viber_Work") || !strings.Contains(got, "[Viber_Home]") {
		t.Errorf("ini = %q", got)
	}
	if f.registry() != "Home|Viber_Home\n" {
		t.Errorf("registry = %q", f.registry())
	}
	if got := f.mgr.List(); len(got) != 1 || got[0].Name != "Home" {
		t.Errorf("List() = %+v", got)
	}
}

func TestDelete_ReservedBoxLeavesConfig(t *testing.T) {
	ini := baseINI + "\r\n[Viber_Home]\r\nEnabled=y\r\n"
	f := newFixture(t, "Bob|GlobalSettings\nHome|Viber_Home\n", ini)

	res, err := f.mgr.Delete(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if res.SectionRemoved || f.launcher.reloads != 0 {
		t.Error("no section should be removed")
	}
	if f.ini(t) != ini {
		t.Errorf("ini = %q, must be untouched", f.ini(t))
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "GlobalSettings") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if f.registry() != "Home|Viber_Home\n" {
		t.Errorf("registry = %q, the bad record should still be removed", f.registry())
	}
}

func TestDelete_DriftedConfig(t *testing.T) {
	// The user already removed the box in Sandboxie's UI.
	f := newFixture(t, "Work|Viber_Work\n", baseINI)

	res, err := f.mgr.Delete(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if res.SectionRemoved {
		t.Error("SectionRemoved = true, nothing matched")
	}
	if f.launcher.reloads != 0 {
		t.Errorf("reloads = %d, want 0", f.launcher.reloads)
	}
	if f.ini(t) != baseINI {
		t.Error("config must be untouched")
	}
	if f.mgr.Count() != 0 {
		t.Error("account should be removed locally")
	}
}

func TestDelete_NoConfigIsWarning(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", "")

	res, err := f.mgr.Delete(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", res.Warnings)
	}
	if f.mgr.Count() != 0 || f.registry() != "" {
		t.Error("account should be removed locally")
	}
}

func TestDelete_PersistFailureRollsBack(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI+"[Viber_Work]\r\n")
	f.fs.RenameErr = stderrors.New("sharing violation")

	_, err := f.mgr.Delete(context.Background(), 1, true)
	if !errors.IsKind(err, errors.KindPersistenceFailure) {
		t.Fatalf("Delete() error = %v, want persistence failure", err)
	}
	if f.mgr.Count() != 1 {
		t.Error("account must stay in memory after a failed save")
	}
}

func TestDelete_OutOfRange(t *testing.T) {
	f := newFixture(t, "", baseINI)
	_, err := f.mgr.Delete(context.Background(), 1, true)
	if !errors.IsKind(err, errors.KindOutOfRange) {
		t.Errorf("Delete() error = %v, want out-of-range", err)
	}
	if !strings.Contains(err.Error(), "no accounts") {
		t.Errorf("error = %q, want empty-registry message", err)
	}
}

func TestListIsCopy(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI)

	list := f.mgr.List()
	list[0].Name = "Changed"

	if got, _ := f.mgr.At(1); got.Name != "Work" {
		t.Errorf("At(1).Name = %q, List must return a copy", got.Name)
	}
}

func TestPosition(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\nHome|Viber_Home\n", baseINI)

	if pos, ok := f.mgr.Position("home"); !ok || pos != 2 {
		t.Errorf("Position(home) = (%d, %v), want (2, true)", pos, ok)
	}
	if _, ok := f.mgr.Position("travel"); ok {
		t.Error("Position(travel) should not be found")
	}
}

func TestWithBoxPrefix(t *testing.T) {
	f := newFixture(t, "", baseINI)
	WithBoxPrefix("Msg_")(f.mgr)

	res, err := f.mgr.Add(context.Background(), "Work")
	if err != nil {
		t.Fatal(err)
	}
	if res.Account.BoxID != "Msg_Work" {
		t.Errorf("BoxID = %q, want Msg_Work", res.Account.BoxID)
	}
}
