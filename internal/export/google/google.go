// Package google writes export rows to a Google Sheets spreadsheet using
// Service Account credentials from the environment.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"fintrack/internal/export"
)

type Writer struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ export.SheetWriter = (*Writer)(nil)

// NewFromEnv creates a Sheets writer using environment variables.
// Required: GOOGLE_SPREADSHEET_ID
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// Application Default Credentials via GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Writer, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Writer{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	scope := goption.WithScopes(gsheet.SpreadsheetsScope)
	switch {
	case serviceAccountJSON != "":
		return gsheet.NewService(ctx, goption.WithCredentialsJSON([]byte(serviceAccountJSON)), scope)
	case serviceAccountFile != "":
		return gsheet.NewService(ctx, goption.WithCredentialsFile(serviceAccountFile), scope)
	default:
		// Fall back to Application Default Credentials.
		return gsheet.NewService(ctx, scope)
	}
}

// AppendRows appends one row per export record under the given sheet name,
// columns Source | Amount | Date | Icon.
func (w *Writer) AppendRows(ctx context.Context, sheet string, rows []export.Row) error {
	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		values = append(values, []interface{}{r.Source, r.Amount, r.Date, r.Icon})
	}

	rangeRef := fmt.Sprintf("%s!A:D", sheet)
	_, err := w.svc.Spreadsheets.Values.Append(w.spreadsheetID, rangeRef, &gsheet.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", rangeRef, err)
	}

	slog.InfoContext(ctx, "Rows appended to spreadsheet",
		"sheet", sheet,
		"rows", len(rows))
	return nil
}
