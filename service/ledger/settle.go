package ledger

import (
	"time"

	"github.com/pandodao/safe-ledger/core"
)

// NextPending returns the oldest pending transaction of the snapshot.
func NextPending(snapshot *core.Snapshot) (core.Transaction, bool) {
	var (
		next  core.Transaction
		found bool
	)

	for _, t := range snapshot.Transactions {
		if !t.IsPending() {
			continue
		}

		if !found || core.CompareCreated(t, next) < 0 {
			next, found = t, true
		}
	}

	return next, found
}

type Outcome struct {
	Transaction core.Transaction
	Balance     float64
	Cap         *float64
}

// Settle decides the pending transaction t against the snapshot as of now.
// A source without a holding in the currency settles against a zero balance.
func Settle(snapshot *core.Snapshot, t core.Transaction, now time.Time) Outcome {
	var holding core.Holding
	if user, ok := snapshot.User(t.SourceUserID); ok {
		holding, _ = user.Holding(t.Currency)
	}

	all := make([]core.Transaction, 0, len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		all = append(all, tx)
	}

	balance := ComputeBalance(all, t.SourceUserID, holding.Balance, t.Currency, now)

	t.ProcessedAt = now
	t.State = core.TransactionStateInvalid
	if IsValidTransfer(t.Amount, balance, holding.MaxTransactionAmount) {
		t.State = core.TransactionStateProcessed
	}

	return Outcome{
		Transaction: t,
		Balance:     balance,
		Cap:         holding.MaxTransactionAmount,
	}
}
