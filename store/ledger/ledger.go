package ledger

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/store"
)

func New(users []core.User, transactions []core.Transaction) core.LedgerStore {
	s := &ledgerStore{
		changed: make(chan struct{}),
	}

	snapshot := &core.Snapshot{
		Users:        make(map[string]core.User, len(users)),
		Transactions: make(map[string]core.Transaction, len(transactions)),
	}

	for _, u := range users {
		snapshot.Users[u.ID] = u
	}

	for _, t := range transactions {
		snapshot.Transactions[t.ID] = t
	}

	s.current.Store(snapshot)
	return s
}

type ledgerStore struct {
	current atomic.Pointer[core.Snapshot]

	// mux serializes writers, readers only load current
	mux     sync.Mutex
	changed chan struct{}
}

func (s *ledgerStore) Snapshot() *core.Snapshot {
	return s.current.Load()
}

func (s *ledgerStore) Merge(ctx context.Context, transaction *core.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if transaction == nil || transaction.ID == "" {
		return fmt.Errorf("merge: %w: empty id", store.ErrInvalidTransaction)
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	prev := s.current.Load()
	next := &core.Snapshot{
		Version:      prev.Version + 1,
		Users:        prev.Users,
		Transactions: maps.Clone(prev.Transactions),
	}

	if next.Transactions == nil {
		next.Transactions = make(map[string]core.Transaction, 1)
	}

	next.Transactions[transaction.ID] = *transaction
	s.current.Store(next)

	close(s.changed)
	s.changed = make(chan struct{})
	return nil
}

func (s *ledgerStore) Changed() <-chan struct{} {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.changed
}
