// Package worker processes export requests out of band: it snapshots the
// transaction list from the gateway and appends the requested direction's
// rows to the spreadsheet backend.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/export"
	"fintrack/internal/gateway"
)

type ExportWorker struct {
	reader     gateway.TransactionReader
	serializer *export.Serializer
}

func NewExportWorker(reader gateway.TransactionReader, serializer *export.Serializer) *ExportWorker {
	return &ExportWorker{reader: reader, serializer: serializer}
}

// HandleExportRequest processes a single export request. The transaction
// list is re-read at processing time; the message only names the direction.
func (w *ExportWorker) HandleExportRequest(ctx context.Context, msg *amqp.ExportRequestMessage) error {
	slog.InfoContext(ctx, "Processing export request",
		"direction", msg.Direction,
		"requested_by", msg.RequestedBy)

	txns, err := w.reader.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	n, err := w.serializer.Export(ctx, txns, msg.Direction)
	if err != nil {
		return fmt.Errorf("export %s: %w", msg.Direction, err)
	}

	slog.InfoContext(ctx, "Export completed",
		"direction", msg.Direction,
		"rows", n)
	return nil
}

// Run consumes export requests until the context is done.
func (w *ExportWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeExportRequests(ctx, func(msg *amqp.ExportRequestMessage) error {
		return w.HandleExportRequest(ctx, msg)
	})
}
