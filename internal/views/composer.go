// Package views composes the aggregation outputs each section of the
// tracker renders. The composer owns no state: it reads a snapshot from the
// store and derives everything per call, which is cheap at UI-scale
// transaction volumes.
package views

import (
	"fintrack/internal/core"
	"fintrack/internal/store"
)

const recentLimit = 5

type (
	// Slice is one segment of the dashboard ratio chart.
	Slice struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	DashboardView struct {
		Totals    core.Totals        `json:"totals"`
		Breakdown []Slice            `json:"breakdown"`
		Recent    []core.Transaction `json:"recent"`
		Expenses  []core.Transaction `json:"expenses"` // top-10 by "expense" tag
		Income    []core.Transaction `json:"income"`   // top-10 by "income" tag
	}

	IncomeView struct {
		Records []core.Transaction  `json:"records"`
		Series  []core.SourceAmount `json:"series"`
	}

	ExpensesView struct {
		Records []core.Transaction `json:"records"`
		Trend   []core.DatePoint   `json:"trend"`
	}
)

type Composer struct {
	store *store.Store
}

func NewComposer(s *store.Store) *Composer {
	return &Composer{store: s}
}

// Dashboard derives the main overview: totals, the three-slice ratio chart,
// the recent list (first five in insertion order, or all when showAll) and
// the category-tagged top-10 lists.
func (c *Composer) Dashboard(showAll bool) DashboardView {
	txns := c.store.Transactions()
	totals := core.ComputeTotals(txns)

	limit := recentLimit
	if showAll {
		limit = 0
	}

	return DashboardView{
		Totals: totals,
		Breakdown: []Slice{
			{Name: "Total Balance", Value: totals.Balance},
			{Name: "Total Expenses", Value: totals.Expenses},
			{Name: "Total Income", Value: totals.Income},
		},
		Recent:   core.Recent(txns, limit),
		Expenses: core.FilterByCategory(txns, "expense"),
		Income:   core.FilterByCategory(txns, "income"),
	}
}

// Income derives the income section: the sign-filtered record list and the
// per-source bar chart series.
func (c *Composer) Income() IncomeView {
	txns := c.store.Transactions()
	return IncomeView{
		Records: core.FilterByDirection(txns, core.DirectionIncome),
		Series:  core.GroupBySource(txns, core.DirectionIncome),
	}
}

// Expenses derives the expense section: the sign-filtered record list and
// the {date, abs(amount)} trend chart.
func (c *Composer) Expenses() ExpensesView {
	txns := c.store.Transactions()
	return ExpensesView{
		Records: core.FilterByDirection(txns, core.DirectionExpense),
		Trend:   core.ExpensePoints(txns),
	}
}

// Active renders the view model for the store's current section.
func (c *Composer) Active(showAll bool) any {
	switch c.store.ActiveSection() {
	case core.SectionIncome:
		return c.Income()
	case core.SectionExpenses:
		return c.Expenses()
	default:
		return c.Dashboard(showAll)
	}
}
