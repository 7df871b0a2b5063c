package api

import (
	"time"

	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/service/ledger"
)

type Currency struct {
	ID    core.Currency `json:"id"`
	Label string        `json:"label"`
}

type Transaction struct {
	ID           string                `json:"id"`
	Amount       float64               `json:"amount"`
	Currency     core.Currency         `json:"currency"`
	SourceUserID string                `json:"source_user_id"`
	TargetUserID string                `json:"target_user_id"`
	CreatedAt    time.Time             `json:"created_at"`
	ProcessedAt  *time.Time            `json:"processed_at,omitempty"`
	State        core.TransactionState `json:"state"`
}

type User struct {
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Email       string           `json:"email,omitempty"`
	Balances    []ledger.Balance `json:"balances"`
}

type Snapshot struct {
	Version      uint64        `json:"version"`
	Users        []User        `json:"users"`
	Transactions []Transaction `json:"transactions"`
}

func viewTransaction(t core.Transaction) Transaction {
	v := Transaction{
		ID:           t.ID,
		Amount:       t.Amount,
		Currency:     t.Currency,
		SourceUserID: t.SourceUserID,
		TargetUserID: t.TargetUserID,
		CreatedAt:    t.CreatedAt,
		State:        t.State,
	}

	if !t.IsPending() {
		processed := t.ProcessedAt
		v.ProcessedAt = &processed
	}

	return v
}

func viewUser(snapshot *core.Snapshot, u core.User, now time.Time) User {
	return User{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		Email:       u.Email,
		Balances:    ledger.Balances(snapshot, u.ID, now),
	}
}

func viewSnapshot(snapshot *core.Snapshot, now time.Time) Snapshot {
	return Snapshot{
		Version: snapshot.Version,
		Users: generic.MapSlice(snapshot.ListUsers(), func(u core.User) User {
			return viewUser(snapshot, u, now)
		}),
		Transactions: generic.MapSlice(snapshot.ListTransactions(), viewTransaction),
	}
}
