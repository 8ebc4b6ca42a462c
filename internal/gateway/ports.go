// Package gateway defines the ports to the persistence backend that stores
// transactions and profiles. Adapters live in subpackages (remote HTTP API,
// in-memory fake) and in internal/storage (SQLite).
package gateway

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrRejected is returned when the backend answered but refused the
// operation (success:false in the upstream dialect). The wrapped message is
// user-visible.
var ErrRejected = errors.New("rejected by backend")

// Ports for outbound adapters.
type (
	TransactionReader interface {
		// ListTransactions returns the full transaction list for the
		// session, in the backend's storage order.
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	TransactionWriter interface {
		// AddTransaction persists one record and returns its identifier.
		// When the backend assigns its own id the returned value differs
		// from tx.ID.
		AddTransaction(ctx context.Context, tx core.Transaction) (string, error)
	}

	ProfileReader interface {
		GetProfile(ctx context.Context) (core.Profile, error)
	}

	SessionCloser interface {
		// Logout ends the backend session. Best effort; errors are logged
		// by callers, not propagated to the user.
		Logout(ctx context.Context) error
	}
)

// Gateway is the full backend surface the application wires up.
type Gateway interface {
	TransactionReader
	TransactionWriter
	ProfileReader
	SessionCloser
}
