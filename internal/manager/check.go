package manager

import (
	"context"
	"strings"

	"github.com/firefly-engineering/viberbox/internal/account"
	"github.com/firefly-engineering/viberbox/internal/audit"
)

// Status describes how an account's section looks on disk.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusDrifted    Status = "drifted"  // section missing from Sandboxie.ini
	StatusRepaired   Status = "repaired" // was drifted, section recreated
	StatusInvalid    Status = "invalid"  // box name viberbox will not touch
)

// AccountStatus is one row of a CheckReport.
type AccountStatus struct {
	Position int             `json:"position" yaml:"position"`
	Account  account.Account `json:"account" yaml:"account"`
	Status   Status          `json:"status" yaml:"status"`
}

// CheckReport compares the registry with Sandboxie.ini.
type CheckReport struct {
	ConfigPath string          `json:"config" yaml:"config"`
	Accounts   []AccountStatus `json:"accounts" yaml:"accounts"`
	// Orphans are prefixed sections with no account.
	Orphans  []string `json:"orphans" yaml:"orphans"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Drifted counts accounts still missing their section.
func (r *CheckReport) Drifted() int {
	n := 0
	for _, a := range r.Accounts {
		if a.Status == StatusDrifted {
			n++
		}
	}
	return n
}

// Invalid counts accounts whose box name cannot be used.
func (r *CheckReport) Invalid() int {
	n := 0
	for _, a := range r.Accounts {
		if a.Status == StatusInvalid {
			n++
		}
	}
	return n
}

// Check reports which accounts have lost their section and which prefixed
// sections have no account. With repair, missing sections are recreated.
// Orphans are only reported.
func (m *Manager) Check(ctx context.Context, repair bool) (*CheckReport, error) {
	cfg, err := m.locator.Config()
	if err != nil {
		return nil, err
	}
	names, err := m.sections.Sections(cfg)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[strings.ToLower(n)] = true
	}

	report := &CheckReport{ConfigPath: cfg, Orphans: []string{}}
	added := false
	for i, acct := range m.accounts {
		st := AccountStatus{Position: i + 1, Account: acct, Status: StatusRegistered}
		if usableBox(acct) != nil {
			st.Status = StatusInvalid
		} else if !present[strings.ToLower(acct.BoxID)] {
			st.Status = StatusDrifted
			if repair {
				res := &Result{Account: acct}
				ok, err := m.sections.AddSection(cfg, acct.BoxID, m.template)
				if err != nil {
					m.warn(res, "Could not add sandbox %s to configuration: %v", acct.BoxID, err)
					report.Warnings = append(report.Warnings, res.Warnings...)
				} else {
					if ok {
						added = true
					}
					st.Status = StatusRepaired
					present[strings.ToLower(acct.BoxID)] = true
					m.record(audit.EventRepair, acct, "section recreated")
				}
			}
		}
		report.Accounts = append(report.Accounts, st)
	}

	if added {
		res := &Result{}
		m.reload(ctx, res)
		report.Warnings = append(report.Warnings, res.Warnings...)
	}

	for _, n := range names {
		if hasPrefixFold(n, m.prefix) && !account.HasBox(m.accounts, n) {
			report.Orphans = append(report.Orphans, n)
		}
	}
	return report, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
