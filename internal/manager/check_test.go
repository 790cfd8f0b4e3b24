package manager

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/firefly-engineering/viberbox/internal/audit"
	"github.com/firefly-engineering/viberbox/internal/errors"
)

func TestCheck(t *testing.T) {
	ini := baseINI +
		"\r\n[Viber_Work]\r\nEnabled=y\r\n" +
		"\r\n[Viber_Old]\r\nEnabled=y\r\n" +
		"\r\n[DefaultBox]\r\nEnabled=y\r\n"
	f := newFixture(t, "Work|Viber_Work\nHome|Viber_Home\n", ini)

	report, err := f.mgr.Check(context.Background(), false)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if report.ConfigPath != iniPath {
		t.Errorf("ConfigPath = %q", report.ConfigPath)
	}
	if len(report.Accounts) != 2 {
		t.Fatalf("Accounts = %+v", report.Accounts)
	}
	if report.Accounts[0].Status != StatusRegistered {
		t.Errorf("Work status = %s, want registered", report.Accounts[0].Status)
	}
	if report.Accounts[1].Status != StatusDrifted || report.Accounts[1].Position != 2 {
		t.Errorf("Home = %+v, want drifted at 2", report.Accounts[1])
	}
	if report.Drifted() != 1 {
		t.Errorf("Drifted() = %d, want 1", report.Drifted())
	}
	if len(report.Orphans) != 1 || report.Orphans[0] != "Viber_Old" {
		t.Errorf("Orphans = %v, want [Viber_Old]", report.Orphans)
	}
	if f.ini(t) != ini {
		t.Error("check without repair must not modify the config")
	}
	if f.launcher.reloads != 0 {
		t.Error("check without repair must not reload")
	}
}

func TestCheck_Repair(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\nHome|Viber_Home\n", baseINI)

	report, err := f.mgr.Check(context.Background(), true)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	for _, st := range report.Accounts {
		if st.Status != StatusRepaired {
			t.Errorf("%s status = %s, want repaired", st.Account.Name, st.Status)
		}
	}
	if report.Drifted() != 0 {
		t.Errorf("Drifted() = %d after repair", report.Drifted())
	}
	if f.launcher.reloads != 1 {
		t.Errorf("reloads = %d, want a single reload", f.launcher.reloads)
	}

	again, err := f.mgr.Check(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if again.Drifted() != 0 {
		t.Errorf("second check found %d drifted accounts", again.Drifted())
	}

	repairs := 0
	for _, ty := range f.auditor.types() {
		if ty == audit.EventRepair {
			repairs++
		}
	}
	if repairs != 2 {
		t.Errorf("repair events = %d, want 2", repairs)
	}
}

func TestCheck_RepairWriteFailure(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", baseINI)
	f.fs.WriteErrs[iniPath] = stderrors.New("read-only")

	report, err := f.mgr.Check(context.Background(), true)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.Accounts[0].Status != StatusDrifted {
		t.Errorf("status = %s, want drifted", report.Accounts[0].Status)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", report.Warnings)
	}
}

func TestCheck_NoConfig(t *testing.T) {
	f := newFixture(t, "Work|Viber_Work\n", "")
	if _, err := f.mgr.Check(context.Background(), false); !errors.IsKind(err, errors.KindConfigFileNotFound) {
		t.Errorf("Check() error = %v, want config-not-found", err)
	}
}

func TestCheck_UnusableBoxes(t *testing.T) {
	f := newFixture(t, "Bob|GlobalSettings\nNone|\nWork|Viber_Work\n", baseINI)

	report, err := f.mgr.Check(context.Background(), true)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	want := []Status{StatusInvalid, StatusInvalid, StatusRepaired}
	for i, st := range report.Accounts {
		if st.Status != want[i] {
			t.Errorf("account %d status = %s, want %s", i+1, st.Status, want[i])
		}
	}
	if report.Invalid() != 2 || report.Drifted() != 0 {
		t.Errorf("Invalid() = %d, Drifted() = %d; want 2, 0", report.Invalid(), report.Drifted())
	}
	got := f.ini(t)
	if strings.Contains(got, "[]") || strings.Count(got, "[GlobalSettings]") != 1 {
		t.Errorf("ini = %q, only Viber_Work should be added", got)
	}
	if !strings.Contains(got, "[Viber_Work]") {
		t.Errorf("ini = %q, missing repaired section", got)
	}
}
