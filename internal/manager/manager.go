package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/firefly-engineering/viberbox/internal/account"
	"github.com/firefly-engineering/viberbox/internal/audit"
	"github.com/firefly-engineering/viberbox/internal/boxname"
	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/sandboxie"
)

// Store persists the registry.
type Store interface {
	Load() ([]account.Account, error)
	Save(accounts []account.Account) error
}

// Sections edits Sandboxie.ini.
type Sections interface {
	SectionExists(path, name string) (bool, error)
	AddSection(path, name string, props []sandboxie.Property) (bool, error)
	RemoveSection(path, name string) (bool, error)
	Sections(path string) ([]string, error)
}

// Locator finds the external files and programs.
type Locator interface {
	Launcher() (string, error)
	Config() (string, error)
	App() (string, error)
	SaveAppPath(path string) error
}

// Launcher drives Start.exe.
type Launcher interface {
	Reload(ctx context.Context) error
	RunInBox(ctx context.Context, box, app string) error
}

// LauncherFactory builds a Launcher for the Start.exe at exe.
type LauncherFactory func(exe string) Launcher

// AppPrompt asks the user for the application path when discovery fails.
type AppPrompt func(ctx context.Context) (string, error)

// Auditor records lifecycle events.
type Auditor interface {
	LogEvent(eventType audit.EventType, account, box, details string) error
}

// Result describes what an operation did.
type Result struct {
	Account        account.Account
	Healed         bool
	SectionAdded   bool
	SectionRemoved bool
	Warnings       []string
}

// Manager owns the in-memory registry.
type Manager struct {
	store       Store
	sections    Sections
	locator     Locator
	newLauncher LauncherFactory
	audit       Auditor
	promptApp   AppPrompt
	prefix      string
	template    []sandboxie.Property

	accounts []account.Account
}

// Option configures a Manager.
type Option func(*Manager)

// WithBoxPrefix sets the namespace tag for derived box names.
func WithBoxPrefix(prefix string) Option {
	return func(m *Manager) {
		m.prefix = prefix
	}
}

// WithTemplate sets the properties written into new sections.
func WithTemplate(props []sandboxie.Property) Option {
	return func(m *Manager) {
		m.template = props
	}
}

// WithAuditor records events to a.
func WithAuditor(a Auditor) Option {
	return func(m *Manager) {
		m.audit = a
	}
}

// WithAppPrompt sets the fallback used when Viber cannot be found.
func WithAppPrompt(p AppPrompt) Option {
	return func(m *Manager) {
		m.promptApp = p
	}
}

// New loads the registry from store and returns a Manager.
func New(store Store, sections Sections, locator Locator, newLauncher LauncherFactory, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:       store,
		sections:    sections,
		locator:     locator,
		newLauncher: newLauncher,
		prefix:      boxname.DefaultPrefix,
		template:    sandboxie.DefaultTemplate(),
	}
	for _, opt := range opts {
		opt(m)
	}

	accounts, err := store.Load()
	if err != nil {
		return nil, err
	}
	m.accounts = accounts
	logging.Debug("loaded accounts", "count", len(accounts))
	return m, nil
}

// List returns a copy of the registry in display order.
func (m *Manager) List() []account.Account {
	return append([]account.Account(nil), m.accounts...)
}

// Count returns the number of accounts.
func (m *Manager) Count() int {
	return len(m.accounts)
}

// At returns the account at 1-based position pos.
func (m *Manager) At(pos int) (account.Account, error) {
	if pos < 1 || pos > len(m.accounts) {
		return account.Account{}, errors.OutOfRange(pos, len(m.accounts))
	}
	return m.accounts[pos-1], nil
}

// Position returns the 1-based position of the account called name.
func (m *Manager) Position(name string) (int, bool) {
	i, ok := account.Find(m.accounts, name)
	return i + 1, ok
}

// Add registers a new account and creates its box section.
func (m *Manager) Add(ctx context.Context, name string) (*Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.EmptyName()
	}
	if strings.ContainsAny(name, account.Separator+"\r\n") {
		return nil, errors.InvalidName(name, "must not contain '|' or line breaks")
	}
	if account.Exists(m.accounts, name) {
		return nil, errors.DuplicateName(name)
	}

	cfg, err := m.locator.Config()
	if err != nil {
		return nil, err
	}

	box := boxname.Unique(boxname.Derive(m.prefix, name), func(id string) bool {
		return account.HasBox(m.accounts, id)
	})
	if err := usableBox(account.Account{Name: name, BoxID: box}); err != nil {
		return nil, err
	}
	res := &Result{Account: account.Account{Name: name, BoxID: box}}
	logging.Debug("adding account", "name", name, "box", box, "config", cfg)

	m.ensureSection(ctx, res, cfg)

	prev := m.accounts
	next := append(append([]account.Account(nil), prev...), res.Account)
	if err := m.persist(prev, next); err != nil {
		return res, err
	}

	m.record(audit.EventAdd, res.Account, sectionDetail(res))
	return res, nil
}

// Launch starts Viber inside the box of the account at pos, recreating a
// missing section first.
func (m *Manager) Launch(ctx context.Context, pos int) (*Result, error) {
	acct, err := m.At(pos)
	if err != nil {
		return nil, err
	}
	if err := usableBox(acct); err != nil {
		return nil, err
	}
	res := &Result{Account: acct}

	cfg, err := m.locator.Config()
	if err != nil {
		return res, err
	}

	m.ensureSection(ctx, res, cfg)
	if res.SectionAdded {
		res.Healed = true
		m.record(audit.EventHeal, acct, "section recreated")
	}

	app, err := m.resolveApp(ctx)
	if err != nil {
		return res, err
	}

	exe, err := m.locator.Launcher()
	if err != nil {
		return res, err
	}

	if err := m.newLauncher(exe).RunInBox(ctx, acct.BoxID, app); err != nil {
		m.warn(res, "Failed to launch Viber: %v", err)
		return res, nil
	}

	m.record(audit.EventLaunch, acct, app)
	return res, nil
}

// Delete removes the account at pos and its box section. Nothing changes
// unless confirmed is true.
func (m *Manager) Delete(ctx context.Context, pos int, confirmed bool) (*Result, error) {
	acct, err := m.At(pos)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, errors.NotConfirmed(acct.Name)
	}
	res := &Result{Account: acct}

	cfg, err := m.locator.Config()
	switch {
	case usableBox(acct) != nil:
		m.warn(res, "Sandbox name %q is not one viberbox manages; Sandboxie.ini left unchanged", acct.BoxID)
	case err != nil:
		m.warn(res, "Sandboxie.ini not found; sandbox %s was not removed from the configuration", acct.BoxID)
	default:
		removed, err := m.sections.RemoveSection(cfg, acct.BoxID)
		switch {
		case err != nil:
			m.warn(res, "Could not remove sandbox %s from configuration: %v", acct.BoxID, err)
		case removed:
			res.SectionRemoved = true
			m.reload(ctx, res)
		default:
			logging.Debug("no section to remove", "box", acct.BoxID)
		}
	}

	prev := m.accounts
	next := make([]account.Account, 0, len(prev)-1)
	next = append(next, prev[:pos-1]...)
	next = append(next, prev[pos:]...)
	if err := m.persist(prev, next); err != nil {
		return res, err
	}

	m.record(audit.EventDelete, acct, sectionDetail(res))
	return res, nil
}

// usableBox rejects box names only a hand-edited registry can hold: empty
// or malformed names and sections Sandboxie keeps for itself.
func usableBox(acct account.Account) error {
	if !boxname.Valid(acct.BoxID) || sandboxie.IsReserved(acct.BoxID) {
		return errors.InvalidBox(acct.Name, acct.BoxID)
	}
	return nil
}

// ensureSection creates the account's section when it is missing and
// reloads Sandboxie if it did. Failures become warnings.
func (m *Manager) ensureSection(ctx context.Context, res *Result, cfg string) {
	box := res.Account.BoxID

	exists, err := m.sections.SectionExists(cfg, box)
	if err != nil {
		m.warn(res, "Could not read sandbox configuration: %v", err)
		return
	}
	if exists {
		logging.Debug("section present", "box", box)
		return
	}

	added, err := m.sections.AddSection(cfg, box, m.template)
	if err != nil {
		m.warn(res, "Could not add sandbox %s to configuration: %v", box, err)
		return
	}
	if added {
		res.SectionAdded = true
		m.reload(ctx, res)
	}
}

// reload asks Sandboxie to pick up config changes. Failure is a warning:
// the change still applies on the next natural reload.
func (m *Manager) reload(ctx context.Context, res *Result) {
	exe, err := m.locator.Launcher()
	if err != nil {
		m.warn(res, "Could not reload Sandboxie configuration: %v", err)
		return
	}
	if err := m.newLauncher(exe).Reload(ctx); err != nil {
		m.warn(res, "Could not reload Sandboxie configuration: %v", err)
	}
}

func (m *Manager) resolveApp(ctx context.Context) (string, error) {
	app, err := m.locator.App()
	if err == nil || m.promptApp == nil || !errors.IsKind(err, errors.KindAppNotFound) {
		return app, err
	}

	path, perr := m.promptApp(ctx)
	if perr != nil {
		return "", perr
	}
	if err := m.locator.SaveAppPath(path); err != nil {
		return "", err
	}
	return m.locator.App()
}

// persist saves next, restoring prev in memory if the write fails.
func (m *Manager) persist(prev, next []account.Account) error {
	m.accounts = next
	if err := m.store.Save(next); err != nil {
		m.accounts = prev
		return errors.PersistenceFailure(err)
	}
	return nil
}

func (m *Manager) warn(res *Result, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	logging.Debug("warning", "message", msg, "account", res.Account.Name, "box", res.Account.BoxID)
	m.record(audit.EventWarning, res.Account, msg)
}

func (m *Manager) record(t audit.EventType, acct account.Account, details string) {
	if m.audit == nil {
		return
	}
	if err := m.audit.LogEvent(t, acct.Name, acct.BoxID, details); err != nil {
		logging.Debug("failed to write audit event", "type", t, "error", err)
	}
}

func sectionDetail(res *Result) string {
	switch {
	case res.SectionAdded:
		return "section added"
	case res.SectionRemoved:
		return "section removed"
	default:
		return ""
	}
}
