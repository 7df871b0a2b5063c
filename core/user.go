package core

// Holding is one currency account of a user. Balance is the opening
// balance, the effective balance is always derived from the history.
type Holding struct {
	Currency             Currency `json:"currency"`
	WalletID             string   `json:"wallet_id,omitempty"`
	Balance              float64  `json:"balance"`
	MaxTransactionAmount *float64 `json:"max_transaction_amount,omitempty"`
}

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Email       string    `json:"email,omitempty"`
	Holdings    []Holding `json:"holdings"`
}

func (u *User) Holding(currency Currency) (Holding, bool) {
	for _, h := range u.Holdings {
		if h.Currency == currency {
			return h, true
		}
	}

	return Holding{}, false
}
