package main

import (
	stdctx "context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/core"
	"fintrack/internal/export"
	exportgoogle "fintrack/internal/export/google"
	"fintrack/internal/gateway"
	"fintrack/internal/log"
)

const commandTimeout = 30 * time.Second

// openGateway builds the gateway selected by the global options.
func openGateway(ctx stdctx.Context, c *context) (gateway.Gateway, backend.CleanupFunc, error) {
	logger := log.New(log.Config{Component: log.ComponentBackend})
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.Create(ctx, backend.Config{
		Type:           backend.Type(c.Backend),
		RemoteBaseURL:  c.RemoteURL,
		RemoteEmail:    c.RemoteEmail,
		RemotePassword: c.RemotePassword,
		SQLiteDBPath:   c.DBPath,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := result.Cleanup
	if cleanup == nil {
		cleanup = func() error { return nil }
	}
	return result.Gateway, cleanup, nil
}

func parseDirection(s string) (core.Direction, error) {
	switch s {
	case "income":
		return core.DirectionIncome, nil
	case "expenses", "expense":
		return core.DirectionExpense, nil
	default:
		return "", fmt.Errorf("unknown direction %q, want income or expenses", s)
	}
}

type totalsCmd struct{}

func (t *totalsCmd) Run(c *context) error {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), commandTimeout)
	defer cancel()

	gw, cleanup, err := openGateway(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	txns, err := gw.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	totals := core.ComputeTotals(txns)
	fmt.Printf("income:   %.2f\n", totals.Income)
	fmt.Printf("expenses: %.2f\n", totals.Expenses)
	fmt.Printf("balance:  %.2f\n", totals.Balance)
	return nil
}

type listCmd struct {
	Direction string `arg:"" help:"Direction to list [income|expenses]."`
}

func (l *listCmd) Run(c *context) error {
	dir, err := parseDirection(l.Direction)
	if err != nil {
		return err
	}

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), commandTimeout)
	defer cancel()

	gw, cleanup, err := openGateway(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	txns, err := gw.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSOURCE\tAMOUNT\tICON")
	for _, tx := range core.FilterByDirection(txns, dir) {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", tx.Date, tx.Label(), tx.Amount, tx.Icon)
	}
	return w.Flush()
}

type exportCmd struct {
	Direction string `arg:"" help:"Direction to export [income|expenses]."`
}

func (e *exportCmd) Run(c *context) error {
	dir, err := parseDirection(e.Direction)
	if err != nil {
		return err
	}

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), commandTimeout)
	defer cancel()

	gw, cleanup, err := openGateway(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	txns, err := gw.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	writer, err := exportgoogle.NewFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("initialize sheets writer: %w", err)
	}

	count, err := export.NewSerializer(writer).Export(ctx, txns, dir)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("exported %d rows to sheet %q\n", count, export.SheetName(dir))
	return nil
}
