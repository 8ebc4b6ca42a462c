package memory

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
)

// Store is an in-process gateway used as the default dev backend and as the
// stub in tests. Writes validate the same invariants the real backends do.
type Store struct {
	mu      sync.Mutex
	items   []core.Transaction
	profile core.Profile
	nextID  int

	// rejection, when set, makes AddTransaction answer like a
	// success:false reply from the remote API.
	rejection string
}

var _ gateway.Gateway = (*Store)(nil)

func New() *Store {
	return &Store{profile: core.Profile{Email: "dev@localhost", Name: "Developer"}}
}

// NewSeeded returns a store pre-populated with the given transactions.
func NewSeeded(txns []core.Transaction) *Store {
	s := New()
	s.items = append(s.items, txns...)
	return s
}

// RejectWith makes every subsequent AddTransaction fail with the given
// user-visible message, mimicking a success:false backend reply.
func (s *Store) RejectWith(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejection = message
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

func (s *Store) AddTransaction(_ context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rejection != "" {
		return "", fmt.Errorf("%w: %s", gateway.ErrRejected, s.rejection)
	}
	s.nextID++
	if tx.ID == "" {
		tx.ID = fmt.Sprintf("mem:%d", s.nextID)
	}
	s.items = append(s.items, tx)
	return tx.ID, nil
}

func (s *Store) GetProfile(_ context.Context) (core.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile, nil
}

func (s *Store) SetProfile(p core.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Store) Logout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
