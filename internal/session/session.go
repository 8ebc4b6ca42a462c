// Package session owns the fetch-then-populate lifecycle: one store load on
// session start, a clear on teardown. The bootstrap is one-shot per call
// and never mutates the store after its context is gone, so a torn-down
// consumer cannot receive a late write.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
	"fintrack/internal/store"
)

type Manager struct {
	gw    gateway.Gateway
	store *store.Store

	mu           sync.Mutex
	bootstrapped bool
}

func NewManager(gw gateway.Gateway, s *store.Store) *Manager {
	return &Manager{gw: gw, store: s}
}

// Bootstrap fetches the profile and the full transaction list concurrently
// and populates the store. A fetch failure leaves the store in its previous
// state and is reported to the caller; there is no automatic retry.
func (m *Manager) Bootstrap(ctx context.Context) error {
	var (
		profile core.Profile
		txns    []core.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := m.gw.GetProfile(gctx)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		t, err := m.gw.ListTransactions(gctx)
		if err != nil {
			return fmt.Errorf("fetch transactions: %w", err)
		}
		txns = t
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "Session bootstrap failed", "error", err)
		return err
	}

	// The requester may have gone away while the fetches ran; drop the
	// result instead of mutating state nobody is watching.
	if ctx.Err() != nil {
		slog.WarnContext(ctx, "Session bootstrap result dropped", "reason", ctx.Err())
		return ctx.Err()
	}

	m.store.Load(txns)
	m.store.SetProfile(profile)

	m.mu.Lock()
	m.bootstrapped = true
	m.mu.Unlock()

	slog.InfoContext(ctx, "Session bootstrapped",
		"transactions", len(txns),
		"email", profile.Email)
	return nil
}

// Bootstrapped reports whether a bootstrap has completed successfully.
func (m *Manager) Bootstrapped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bootstrapped
}

// Teardown logs the session out of the backend (best effort) and clears
// the store.
func (m *Manager) Teardown(ctx context.Context) {
	if err := m.gw.Logout(ctx); err != nil {
		slog.WarnContext(ctx, "Backend logout failed", "error", err)
	}
	m.store.Clear()

	m.mu.Lock()
	m.bootstrapped = false
	m.mu.Unlock()
}
