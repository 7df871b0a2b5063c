package ledger

// IsValidTransfer reports whether amount may leave an account holding
// sourceBalance. A nil maxPerTransaction means the holding has no cap.
func IsValidTransfer(amount, sourceBalance float64, maxPerTransaction *float64) bool {
	if !(amount > 0) {
		return false
	}

	if sourceBalance < amount {
		return false
	}

	return maxPerTransaction == nil || amount <= *maxPerTransaction
}
