package core

import "strings"

// CategoryDisplayLimit caps category-filtered lists. It is a UI display
// limit, not a correctness bound.
const CategoryDisplayLimit = 10

type (
	// Totals is the aggregate summary shown on the dashboard cards.
	Totals struct {
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
		Balance  float64 `json:"balance"`
	}

	// SourceAmount is an amount folded per distinct source, in first-seen
	// order. It backs the income bar-chart series.
	SourceAmount struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	}

	// DatePoint is a single point of the expense trend chart.
	DatePoint struct {
		Date   string  `json:"date"`
		Amount float64 `json:"amount"`
	}
)

// ComputeTotals folds a transaction list into income, expense and balance
// sums. Income sums positive amounts, Expenses sums the absolute value of
// negative amounts, Balance is income minus expenses. A nil or empty list
// yields the zero result.
func ComputeTotals(txns []Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		if tx.Amount > 0 {
			t.Income += tx.Amount
		} else if tx.Amount < 0 {
			t.Expenses += -tx.Amount
		}
	}
	t.Balance = t.Income - t.Expenses
	return t
}

// GroupBySource filters by the direction's sign and folds amounts into one
// entry per distinct source label, preserving first-seen order.
func GroupBySource(txns []Transaction, dir Direction) []SourceAmount {
	var out []SourceAmount
	index := make(map[string]int)
	for _, tx := range txns {
		if !dir.Matches(tx.Amount) {
			continue
		}
		name := tx.Label()
		if i, ok := index[name]; ok {
			out[i].Amount += tx.Amount
			continue
		}
		index[name] = len(out)
		out = append(out, SourceAmount{Name: name, Amount: tx.Amount})
	}
	return out
}

// FilterByCategory returns transactions whose category tag contains the
// given name, case-insensitively, up to CategoryDisplayLimit records.
func FilterByCategory(txns []Transaction, category string) []Transaction {
	needle := strings.ToLower(category)
	var out []Transaction
	for _, tx := range txns {
		if !strings.Contains(strings.ToLower(tx.Category), needle) {
			continue
		}
		out = append(out, tx)
		if len(out) == CategoryDisplayLimit {
			break
		}
	}
	return out
}

// FilterByDirection returns transactions whose sign matches the direction,
// in list order.
func FilterByDirection(txns []Transaction, dir Direction) []Transaction {
	var out []Transaction
	for _, tx := range txns {
		if dir.Matches(tx.Amount) {
			out = append(out, tx)
		}
	}
	return out
}

// Recent returns the first limit elements of the list as currently ordered.
// No sort by date is applied; insertion order is the display order. A limit
// of zero or less, or a list shorter than limit, returns the whole list.
func Recent(txns []Transaction, limit int) []Transaction {
	if limit <= 0 || len(txns) <= limit {
		return txns
	}
	return txns[:limit]
}

// ExpensePoints maps the expense-side transactions to {date, abs(amount)}
// pairs for the trend chart, in list order.
func ExpensePoints(txns []Transaction) []DatePoint {
	var out []DatePoint
	for _, tx := range txns {
		if tx.Amount >= 0 {
			continue
		}
		out = append(out, DatePoint{Date: tx.Date, Amount: -tx.Amount})
	}
	return out
}
