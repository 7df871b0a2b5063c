package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pandodao/safe-ledger/core"
)

var epoch = time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

func at(days int) time.Time {
	return epoch.AddDate(0, 0, days)
}

func settled(id, from, to string, amount float64, currency core.Currency, processed time.Time) core.Transaction {
	return core.Transaction{
		ID:           id,
		Amount:       amount,
		Currency:     currency,
		SourceUserID: from,
		TargetUserID: to,
		CreatedAt:    processed.Add(-time.Hour),
		ProcessedAt:  processed,
		State:        core.TransactionStateProcessed,
	}
}

func TestComputeBalance(t *testing.T) {
	history := []core.Transaction{
		settled("1", "a", "b", 42, core.CurrencyEthereum, at(1)),
		settled("2", "b", "a", 25, core.CurrencyEthereum, at(2)),
		settled("3", "c", "a", 2000, core.CurrencyEthereum, at(3)),
		settled("4", "a", "b", 10, core.CurrencyBitcoin, at(3)),
		settled("5", "b", "c", 7, core.CurrencyEthereum, at(3)),
	}

	tests := []struct {
		name         string
		transactions []core.Transaction
		userID       string
		currency     core.Currency
		asOf         time.Time
		want         float64
	}{
		{
			name:     "empty history",
			userID:   "a",
			currency: core.CurrencyEthereum,
			asOf:     at(10),
			want:     100,
		},
		{
			name:         "debit and credits",
			transactions: history,
			userID:       "a",
			currency:     core.CurrencyEthereum,
			asOf:         at(10),
			want:         100 - 42 + 25 + 2000,
		},
		{
			name:         "other currency",
			transactions: history,
			userID:       "a",
			currency:     core.CurrencyBitcoin,
			asOf:         at(10),
			want:         90,
		},
		{
			name:         "as of excludes same instant",
			transactions: history,
			userID:       "a",
			currency:     core.CurrencyEthereum,
			asOf:         at(2),
			want:         100 - 42,
		},
		{
			name:         "unrelated user transfers",
			transactions: history,
			userID:       "d",
			currency:     core.CurrencyEthereum,
			asOf:         at(10),
			want:         100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeBalance(tt.transactions, tt.userID, 100, tt.currency, tt.asOf); got != tt.want {
				t.Errorf("ComputeBalance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeBalanceIgnoresUnsettled(t *testing.T) {
	pending := core.Transaction{
		ID:           "p",
		Amount:       30,
		Currency:     core.CurrencyBitcoin,
		SourceUserID: "a",
		TargetUserID: "b",
		CreatedAt:    at(1),
		State:        core.TransactionStatePending,
	}

	invalid := settled("i", "a", "b", 3000, core.CurrencyBitcoin, at(2))
	invalid.State = core.TransactionStateInvalid

	// processed state without a processed time never counts
	stamped := settled("s", "b", "a", 5, core.CurrencyBitcoin, time.Time{})

	for _, userID := range []string{"a", "b"} {
		got := ComputeBalance([]core.Transaction{pending, invalid, stamped}, userID, 50, core.CurrencyBitcoin, at(10))
		if got != 50 {
			t.Errorf("ComputeBalance(%s) = %v, want 50", userID, got)
		}
	}
}

func TestComputeBalanceOrderIndependent(t *testing.T) {
	var history []core.Transaction
	for i := 0; i < 50; i++ {
		from, to := "a", "b"
		if i%3 == 0 {
			from, to = to, from
		}

		history = append(history, settled(string(rune('A'+i)), from, to, float64(i+1), core.CurrencyBitcoin, at(i)))
	}

	want := ComputeBalance(history, "a", 1000, core.CurrencyBitcoin, at(40))

	r := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		shuffled := append([]core.Transaction(nil), history...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		if got := ComputeBalance(shuffled, "a", 1000, core.CurrencyBitcoin, at(40)); got != want {
			t.Fatalf("shuffle %d: ComputeBalance() = %v, want %v", n, got, want)
		}
	}
}

func TestBalances(t *testing.T) {
	snapshot := &core.Snapshot{
		Users: map[string]core.User{
			"a": {
				ID: "a",
				Holdings: []core.Holding{
					{Currency: core.CurrencyBitcoin, Balance: 445, MaxTransactionAmount: ptr(10)},
					{Currency: core.CurrencyEthereum, Balance: 18000},
				},
			},
		},
		Transactions: map[string]core.Transaction{
			"1": settled("1", "a", "b", 42, core.CurrencyEthereum, at(1)),
			"2": settled("2", "c", "b", 42, core.CurrencyEthereum, at(1)),
		},
	}

	balances := Balances(snapshot, "a", at(5))
	if len(balances) != 2 {
		t.Fatalf("len(Balances()) = %d, want 2", len(balances))
	}

	if balances[0].Balance != 445 || *balances[0].MaxTransactionAmount != 10 {
		t.Errorf("bitcoin balance = %+v", balances[0])
	}

	if balances[1].Balance != 18000-42 || balances[1].MaxTransactionAmount != nil {
		t.Errorf("ethereum balance = %+v", balances[1])
	}

	if got := Balances(snapshot, "missing", at(5)); got != nil {
		t.Errorf("Balances(missing) = %v, want nil", got)
	}
}
