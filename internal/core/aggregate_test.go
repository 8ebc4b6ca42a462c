package core

import "testing"

func sample() []Transaction {
	return []Transaction{
		{ID: "1", Source: "Salary", Amount: 1200, Date: "2024-01-01", Category: "income"},
		{ID: "2", Source: "Groceries", Amount: -42.5, Date: "2024-01-02", Category: "expense"},
		{ID: "3", Source: "Salary", Amount: 300, Date: "2024-01-03", Category: "income"},
		{ID: "4", Source: "Rent", Amount: -800, Date: "2024-01-04", Category: "expense"},
		{ID: "5", Source: "Affiliate", Amount: 70, Date: "2024-01-05", Category: "income"},
		{ID: "6", Source: "Travel", Amount: -120, Date: "2024-01-06", Category: "expense"},
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	for _, txns := range [][]Transaction{nil, {}} {
		got := ComputeTotals(txns)
		if got.Income != 0 || got.Expenses != 0 || got.Balance != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	}
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(sample())
	if got.Income != 1570 {
		t.Fatalf("income: expected 1570, got %v", got.Income)
	}
	if got.Expenses != 962.5 {
		t.Fatalf("expenses: expected 962.5, got %v", got.Expenses)
	}
	if got.Balance != got.Income-got.Expenses {
		t.Fatalf("balance invariant violated: %+v", got)
	}
}

func TestGroupBySource(t *testing.T) {
	txns := []Transaction{
		{Source: "A", Amount: 100},
		{Source: "A", Amount: 50},
		{Source: "B", Amount: 20},
		{Source: "C", Amount: -5},
	}
	got := GroupBySource(txns, DirectionIncome)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	// First-seen order: A before B, negative C excluded.
	if got[0].Name != "A" || got[0].Amount != 150 {
		t.Fatalf("group A: got %+v", got[0])
	}
	if got[1].Name != "B" || got[1].Amount != 20 {
		t.Fatalf("group B: got %+v", got[1])
	}
}

func TestGroupBySourceCategoryFallback(t *testing.T) {
	txns := []Transaction{{Source: "", Category: "income", Amount: 10}}
	got := GroupBySource(txns, DirectionIncome)
	if len(got) != 1 || got[0].Name != "income" {
		t.Fatalf("expected category fallback, got %+v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(sample(), "EXPENSE")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}

	// Display cap at CategoryDisplayLimit entries.
	var many []Transaction
	for i := 0; i < 25; i++ {
		many = append(many, Transaction{Source: "x", Amount: -1, Category: "expense"})
	}
	if got := FilterByCategory(many, "expense"); len(got) != CategoryDisplayLimit {
		t.Fatalf("expected cap of %d, got %d", CategoryDisplayLimit, len(got))
	}
}

func TestFilterByDirection(t *testing.T) {
	income := FilterByDirection(sample(), DirectionIncome)
	for _, tx := range income {
		if tx.Amount <= 0 {
			t.Fatalf("income filter leaked %+v", tx)
		}
	}
	if len(income) != 3 {
		t.Fatalf("expected 3 income records, got %d", len(income))
	}
}

func TestRecent(t *testing.T) {
	txns := sample()

	got := Recent(txns, 5)
	if len(got) != 5 {
		t.Fatalf("expected 5, got %d", len(got))
	}
	for i := range got {
		if got[i].ID != txns[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].ID, txns[i].ID)
		}
	}

	if got := Recent(txns[:3], 5); len(got) != 3 {
		t.Fatalf("short list: expected 3, got %d", len(got))
	}
	if got := Recent(txns, 0); len(got) != len(txns) {
		t.Fatalf("show all: expected %d, got %d", len(txns), len(got))
	}
}

func TestExpensePoints(t *testing.T) {
	got := ExpensePoints(sample())
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	if got[0].Date != "2024-01-02" || got[0].Amount != 42.5 {
		t.Fatalf("first point: got %+v", got[0])
	}
	for _, p := range got {
		if p.Amount <= 0 {
			t.Fatalf("expense point must be positive: %+v", p)
		}
	}
}
