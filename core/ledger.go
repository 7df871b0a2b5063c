package core

import (
	"context"
	"slices"
	"strings"
)

// Snapshot is one immutable view of the ledger. A published snapshot is
// never written again, a change always produces a new snapshot.
type Snapshot struct {
	Version      uint64                 `json:"version"`
	Users        map[string]User        `json:"users"`
	Transactions map[string]Transaction `json:"transactions"`
}

func (s *Snapshot) User(id string) (User, bool) {
	u, ok := s.Users[id]
	return u, ok
}

func (s *Snapshot) Transaction(id string) (Transaction, bool) {
	t, ok := s.Transactions[id]
	return t, ok
}

// ListUsers returns the users ordered by id.
func (s *Snapshot) ListUsers() []User {
	users := make([]User, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, u)
	}

	slices.SortFunc(users, func(a, b User) int {
		return strings.Compare(a.ID, b.ID)
	})

	return users
}

// ListTransactions returns the transactions in creation order, ties by id.
func (s *Snapshot) ListTransactions() []Transaction {
	transactions := make([]Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		transactions = append(transactions, t)
	}

	slices.SortFunc(transactions, CompareCreated)
	return transactions
}

// CompareCreated orders transactions by creation time, then by id.
func CompareCreated(a, b Transaction) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}

	return strings.Compare(a.ID, b.ID)
}

type LedgerStore interface {
	// Snapshot returns the current snapshot, callers must treat it as read only.
	Snapshot() *Snapshot
	// Merge inserts or replaces the transaction keyed by its id.
	Merge(ctx context.Context, transaction *Transaction) error
	// Changed returns a channel closed by the next successful Merge.
	Changed() <-chan struct{}
}
