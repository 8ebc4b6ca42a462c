// Package storage implements the gateway ports on a local SQLite database,
// so the tracker can run self-contained without the upstream API.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ gateway.Gateway = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListTransactions implements gateway.TransactionReader. Rows come back in
// insertion order; no sort by date is applied.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, amount, date, icon, category FROM transactions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := rows.Scan(&tx.ID, &tx.Source, &tx.Amount, &tx.Date, &tx.Icon, &tx.Category); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// AddTransaction implements gateway.TransactionWriter.
func (r *SQLiteRepository) AddTransaction(ctx context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, source, amount, date, icon, category) VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Source, tx.Amount, tx.Date, tx.Icon, tx.Category)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"source", tx.Source,
		"amount", tx.Amount,
		"date", tx.Date)

	return tx.ID, nil
}

// GetProfile implements gateway.ProfileReader. An empty profile table is
// not an error; a default local profile is returned.
func (r *SQLiteRepository) GetProfile(ctx context.Context) (core.Profile, error) {
	var p core.Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT email, name, avatar FROM profile LIMIT 1`).Scan(&p.Email, &p.Name, &p.Avatar)
	if err == sql.ErrNoRows {
		return core.Profile{Email: "local@fintrack", Name: "Local"}, nil
	}
	if err != nil {
		return core.Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

// SaveProfile upserts the single local profile row.
func (r *SQLiteRepository) SaveProfile(ctx context.Context, p core.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profile (email, name, avatar) VALUES (?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET name = excluded.name, avatar = excluded.avatar`,
		p.Email, p.Name, p.Avatar)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Logout implements gateway.SessionCloser. Local data is kept; there is no
// remote session to end.
func (r *SQLiteRepository) Logout(context.Context) error {
	return nil
}
