// Package export turns a filtered transaction list into spreadsheet rows
// and hands them to a sheet backend. The row shape and the per-direction
// sheet names are the serializer's input contract; the file format itself
// belongs to the backend.
package export

import (
	"context"
	"fmt"

	"fintrack/internal/core"
)

// Row is one spreadsheet line. Expense amounts are exported as positive
// values; the sheet is already direction-specific.
type Row struct {
	Source string
	Amount float64
	Date   string
	Icon   string
}

// SheetWriter is the outbound port to a spreadsheet backend.
type SheetWriter interface {
	AppendRows(ctx context.Context, sheet string, rows []Row) error
}

// SheetName returns the target sheet for a direction.
func SheetName(dir core.Direction) string {
	if dir == core.DirectionExpense {
		return "Expenses"
	}
	return "Income"
}

// Rows maps the direction's side of the transaction list to export rows,
// in list order. Missing icons get the direction placeholder.
func Rows(txns []core.Transaction, dir core.Direction) []Row {
	var out []Row
	for _, tx := range txns {
		if !dir.Matches(tx.Amount) {
			continue
		}
		amount := tx.Amount
		if amount < 0 {
			amount = -amount
		}
		icon := tx.Icon
		if icon == "" {
			icon = dir.DefaultIcon()
		}
		out = append(out, Row{
			Source: tx.Label(),
			Amount: amount,
			Date:   tx.Date,
			Icon:   icon,
		})
	}
	return out
}

// Serializer snapshots transactions from a source and writes one
// direction's rows to the sheet backend.
type Serializer struct {
	writer SheetWriter
}

func NewSerializer(w SheetWriter) *Serializer {
	return &Serializer{writer: w}
}

// Export writes the rows for one direction. An empty result is not an
// error; the backend receives no call.
func (s *Serializer) Export(ctx context.Context, txns []core.Transaction, dir core.Direction) (int, error) {
	rows := Rows(txns, dir)
	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.writer.AppendRows(ctx, SheetName(dir), rows); err != nil {
		return 0, fmt.Errorf("append %s rows: %w", SheetName(dir), err)
	}
	return len(rows), nil
}
