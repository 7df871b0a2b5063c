package core

import (
	"time"
)

type TransactionState uint8

const (
	_ TransactionState = iota
	TransactionStatePending
	TransactionStateProcessed
	TransactionStateInvalid
)

//go:generate enumer -type=TransactionState -trimprefix=TransactionState -transform=snake -json -text

type Transaction struct {
	ID           string           `json:"id"`
	Amount       float64          `json:"amount"`
	Currency     Currency         `json:"currency"`
	SourceUserID string           `json:"source_user_id"`
	TargetUserID string           `json:"target_user_id"`
	CreatedAt    time.Time        `json:"created_at"`
	ProcessedAt  time.Time        `json:"processed_at"`
	State        TransactionState `json:"state"`
}

// IsPending reports whether the transaction is still waiting for settlement.
// A transaction is pending exactly as long as it has no processed time.
func (t Transaction) IsPending() bool {
	return t.ProcessedAt.IsZero()
}

func (t Transaction) Involves(userID string) bool {
	return t.SourceUserID == userID || t.TargetUserID == userID
}
