package ledger

import (
	"time"

	"github.com/pandodao/safe-ledger/core"
)

// ComputeBalance folds the settled history of userID in currency over the
// opening balance. Only processed transactions settled strictly before asOf
// count, so settlements at the same instant are not yet visible.
func ComputeBalance(
	transactions []core.Transaction,
	userID string,
	opening float64,
	currency core.Currency,
	asOf time.Time,
) float64 {
	sum := opening

	for _, t := range transactions {
		if t.Currency != currency || t.State != core.TransactionStateProcessed {
			continue
		}

		if t.ProcessedAt.IsZero() || !t.ProcessedAt.Before(asOf) {
			continue
		}

		switch userID {
		case t.SourceUserID:
			sum -= t.Amount
		case t.TargetUserID:
			sum += t.Amount
		}
	}

	return sum
}

type Balance struct {
	Currency             core.Currency `json:"currency"`
	WalletID             string        `json:"wallet_id,omitempty"`
	Opening              float64       `json:"opening"`
	Balance              float64       `json:"balance"`
	MaxTransactionAmount *float64      `json:"max_transaction_amount,omitempty"`
}

// Balances computes the effective balance of every holding of the user as of asOf.
func Balances(snapshot *core.Snapshot, userID string, asOf time.Time) []Balance {
	user, ok := snapshot.User(userID)
	if !ok {
		return nil
	}

	transactions := InvolvingUser(snapshot.ListTransactions(), userID)

	balances := make([]Balance, 0, len(user.Holdings))
	for _, h := range user.Holdings {
		balances = append(balances, Balance{
			Currency:             h.Currency,
			WalletID:             h.WalletID,
			Opening:              h.Balance,
			Balance:              ComputeBalance(transactions, userID, h.Balance, h.Currency, asOf),
			MaxTransactionAmount: h.MaxTransactionAmount,
		})
	}

	return balances
}

func InvolvingUser(transactions []core.Transaction, userID string) []core.Transaction {
	var out []core.Transaction
	for _, t := range transactions {
		if t.Involves(userID) {
			out = append(out, t)
		}
	}

	return out
}
