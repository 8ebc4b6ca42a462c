package store

import (
	"testing"

	"fintrack/internal/core"
)

func TestLoadReplacesWholesale(t *testing.T) {
	s := New()
	s.Load([]core.Transaction{{ID: "a", Source: "x", Amount: 1, Date: "2024-01-01"}})
	s.Load([]core.Transaction{{ID: "b", Source: "y", Amount: 2, Date: "2024-01-02"}})

	got := s.Transactions()
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("last load should win, got %+v", got)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := New()
	s.Append(core.Transaction{ID: "1", Amount: 1})
	s.Append(core.Transaction{ID: "2", Amount: -2})
	s.Append(core.Transaction{ID: "3", Amount: 3})

	got := s.Transactions()
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Fatalf("order broken at %d: %s", i, got[i].ID)
		}
	}
}

func TestTransactionsReturnsCopy(t *testing.T) {
	s := New()
	s.Append(core.Transaction{ID: "1", Source: "a", Amount: 1})

	snap := s.Transactions()
	snap[0].Source = "mutated"

	if s.Transactions()[0].Source != "a" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestActiveSection(t *testing.T) {
	s := New()
	if s.ActiveSection() != core.SectionDashboard {
		t.Fatalf("default section: got %s", s.ActiveSection())
	}

	s.SetActiveSection(core.SectionIncome)
	if s.ActiveSection() != core.SectionIncome {
		t.Fatalf("expected Income, got %s", s.ActiveSection())
	}

	s.SetActiveSection(core.Section("Nope"))
	if s.ActiveSection() != core.SectionIncome {
		t.Fatal("invalid section should be ignored")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Append(core.Transaction{ID: "1", Amount: 1})
	s.SetProfile(core.Profile{Email: "u@example.com"})
	s.SetActiveSection(core.SectionExpenses)

	s.Clear()

	if s.Len() != 0 {
		t.Fatal("transactions should be cleared")
	}
	if _, ok := s.Profile(); ok {
		t.Fatal("profile should be cleared")
	}
	if s.ActiveSection() != core.SectionDashboard {
		t.Fatal("section should reset to Dashboard")
	}
}
