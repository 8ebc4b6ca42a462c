package worker

import (
	"context"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/export"
	expmem "fintrack/internal/export/memory"
	gwmem "fintrack/internal/gateway/memory"
)

func TestHandleExportRequest(t *testing.T) {
	gw := gwmem.NewSeeded([]core.Transaction{
		{ID: "1", Source: "Salary", Amount: 1200, Date: "2024-01-01", Category: "income"},
		{ID: "2", Source: "Rent", Amount: -800, Date: "2024-01-02", Category: "expense"},
		{ID: "3", Source: "Coffee", Amount: -5, Date: "2024-01-03", Category: "expense"},
	})
	writer := expmem.New()
	w := NewExportWorker(gw, export.NewSerializer(writer))

	msg := amqp.NewExportRequestMessage(core.DirectionExpense, "u@example.com")
	if err := w.HandleExportRequest(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	rows := writer.Rows("Expenses")
	if len(rows) != 2 {
		t.Fatalf("expected 2 expense rows, got %d", len(rows))
	}
	if rows[0].Source != "Rent" || rows[0].Amount != 800 {
		t.Fatalf("first row: %+v", rows[0])
	}
	if len(writer.Rows("Income")) != 0 {
		t.Fatal("income sheet should be untouched")
	}
}
