package export_test

import (
	"context"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/export/memory"
)

func txns() []core.Transaction {
	return []core.Transaction{
		{Source: "Salary", Amount: 1200, Date: "2024-01-01", Icon: "💰", Category: "income"},
		{Source: "Groceries", Amount: -42.5, Date: "2024-01-02", Icon: "🛒", Category: "expense"},
		{Source: "Rent", Amount: -800, Date: "2024-01-03", Category: "expense"},
	}
}

func TestRowsExpenses(t *testing.T) {
	rows := export.Rows(txns(), core.DirectionExpense)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Source != "Groceries" || rows[0].Amount != 42.5 {
		t.Fatalf("expense amounts must export positive: %+v", rows[0])
	}
	if rows[1].Icon != core.DirectionExpense.DefaultIcon() {
		t.Fatalf("missing icon should default, got %q", rows[1].Icon)
	}
}

func TestRowsIncome(t *testing.T) {
	rows := export.Rows(txns(), core.DirectionIncome)
	if len(rows) != 1 || rows[0].Source != "Salary" || rows[0].Amount != 1200 {
		t.Fatalf("income rows: %+v", rows)
	}
}

func TestSerializerExport(t *testing.T) {
	w := memory.New()
	s := export.NewSerializer(w)

	n, err := s.Export(context.Background(), txns(), core.DirectionExpense)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 exported rows, got %d", n)
	}
	if got := w.Rows("Expenses"); len(got) != 2 {
		t.Fatalf("writer should hold 2 rows under Expenses, got %d", len(got))
	}
	if got := w.Rows("Income"); len(got) != 0 {
		t.Fatalf("income sheet should be empty, got %d", len(got))
	}
}

func TestSerializerExportEmpty(t *testing.T) {
	w := memory.New()
	s := export.NewSerializer(w)

	n, err := s.Export(context.Background(), nil, core.DirectionIncome)
	if err != nil || n != 0 {
		t.Fatalf("empty export: n=%d err=%v", n, err)
	}
}
