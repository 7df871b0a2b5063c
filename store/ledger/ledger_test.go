package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() core.LedgerStore {
	users := []core.User{
		{ID: "a", Holdings: []core.Holding{{Currency: core.CurrencyBitcoin, Balance: 100}}},
		{ID: "b", Holdings: []core.Holding{{Currency: core.CurrencyBitcoin, Balance: 0}}},
	}

	transactions := []core.Transaction{
		{
			ID:           "one",
			Amount:       10,
			Currency:     core.CurrencyBitcoin,
			SourceUserID: "a",
			TargetUserID: "b",
			CreatedAt:    time.Date(2020, 3, 18, 0, 0, 0, 0, time.UTC),
			State:        core.TransactionStatePending,
		},
	}

	return New(users, transactions)
}

func TestLedgerStore_Snapshot(t *testing.T) {
	s := newStore()

	snapshot := s.Snapshot()
	assert.Equal(t, uint64(0), snapshot.Version)
	assert.Len(t, snapshot.Users, 2)
	assert.Len(t, snapshot.Transactions, 1)
}

func TestLedgerStore_MergeCopyOnWrite(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	before := s.Snapshot()

	tx := core.Transaction{
		ID:           "two",
		Amount:       5,
		Currency:     core.CurrencyBitcoin,
		SourceUserID: "b",
		TargetUserID: "a",
		CreatedAt:    time.Now(),
		State:        core.TransactionStatePending,
	}
	require.NoError(t, s.Merge(ctx, &tx))

	after := s.Snapshot()
	assert.Equal(t, uint64(1), after.Version)
	assert.Len(t, after.Transactions, 2)
	assert.Len(t, before.Transactions, 1, "published snapshot must not change")

	// the store keeps its own copy
	tx.Amount = 500
	got, ok := s.Snapshot().Transaction("two")
	require.True(t, ok)
	assert.Equal(t, 5.0, got.Amount)
}

func TestLedgerStore_MergeReplaces(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	tx, ok := s.Snapshot().Transaction("one")
	require.True(t, ok)

	now := time.Now()
	tx.ProcessedAt = now
	tx.State = core.TransactionStateProcessed
	require.NoError(t, s.Merge(ctx, &tx))

	got, _ := s.Snapshot().Transaction("one")
	assert.Len(t, s.Snapshot().Transactions, 1)
	assert.Equal(t, core.TransactionStateProcessed, got.State)
	assert.True(t, got.ProcessedAt.Equal(now))
}

func TestLedgerStore_MergeAcceptsMalformed(t *testing.T) {
	s := newStore()

	tx := &core.Transaction{
		ID:           "self",
		Amount:       0,
		Currency:     "dogecoin",
		SourceUserID: "a",
		TargetUserID: "a",
	}
	require.NoError(t, s.Merge(context.Background(), tx))

	_, ok := s.Snapshot().Transaction("self")
	assert.True(t, ok)
}

func TestLedgerStore_MergeErrors(t *testing.T) {
	s := newStore()

	err := s.Merge(context.Background(), &core.Transaction{})
	assert.ErrorIs(t, err, store.ErrInvalidTransaction)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Merge(ctx, &core.Transaction{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, uint64(0), s.Snapshot().Version)
}

func TestLedgerStore_Changed(t *testing.T) {
	s := newStore()
	changed := s.Changed()

	select {
	case <-changed:
		t.Fatal("changed closed before merge")
	default:
	}

	require.NoError(t, s.Merge(context.Background(), &core.Transaction{ID: "x"}))

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("changed not closed after merge")
	}

	assert.NotEqual(t, changed, s.Changed())
}

func TestLedgerStore_ConcurrentMerge(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Merge(ctx, &core.Transaction{ID: string(rune('A' + i))})
			_ = s.Snapshot().ListTransactions()
		}(i)
	}

	wg.Wait()

	snapshot := s.Snapshot()
	assert.Equal(t, uint64(n), snapshot.Version)
	assert.Len(t, snapshot.Transactions, n+1)
}
