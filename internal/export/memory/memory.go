package memory

import (
	"context"
	"sync"

	"fintrack/internal/export"
)

// Writer collects exported rows per sheet in memory. Used by tests and as
// the fallback when no spreadsheet backend is configured.
type Writer struct {
	mu     sync.Mutex
	sheets map[string][]export.Row
}

var _ export.SheetWriter = (*Writer)(nil)

func New() *Writer {
	return &Writer{sheets: make(map[string][]export.Row)}
}

func (w *Writer) AppendRows(_ context.Context, sheet string, rows []export.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sheets[sheet] = append(w.sheets[sheet], rows...)
	return nil
}

// Rows returns a copy of the rows collected under a sheet name.
func (w *Writer) Rows(sheet string) []export.Row {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]export.Row(nil), w.sheets[sheet]...)
}
