// Package store holds the session-scoped shared state: the transaction
// list, the active section and the logged-in profile. One Store instance is
// created per session and passed explicitly to the components that need it;
// there is no package-level instance.
package store

import (
	"sync"

	"fintrack/internal/core"
)

type Store struct {
	mu           sync.RWMutex
	transactions []core.Transaction
	section      core.Section
	profile      core.Profile
	hasProfile   bool
}

func New() *Store {
	return &Store{section: core.SectionDashboard}
}

// Load replaces the entire transaction list. Last load wins; no merge or
// dedup logic is applied.
func (s *Store) Load(txns []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]core.Transaction(nil), txns...)
}

// Append adds one record to the end of the list. There is no rollback path:
// callers append only after the persistence call has succeeded.
func (s *Store) Append(tx core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
}

// Transactions returns a copy of the list, safe to hand to the pure
// aggregation functions while other requests mutate the store.
func (s *Store) Transactions() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Transaction(nil), s.transactions...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// SetActiveSection records the section the composer should render. Unknown
// values are ignored rather than rejected; the set of sections is closed.
func (s *Store) SetActiveSection(section core.Section) {
	if !section.IsValid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
}

func (s *Store) ActiveSection() core.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.section
}

func (s *Store) SetProfile(p core.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.hasProfile = true
}

func (s *Store) Profile() (core.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.hasProfile
}

// Clear resets the store to its initial empty state on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	s.profile = core.Profile{}
	s.hasProfile = false
	s.section = core.SectionDashboard
}
