package hc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pandodao/safe-ledger/core"
)

func Handler(version string, ledgers core.LedgerStore) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		snapshot := ledgers.Snapshot()

		var pending int
		for _, tx := range snapshot.Transactions {
			if tx.IsPending() {
				pending++
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version":  version,
			"uptime":   time.Since(t).String(),
			"snapshot": snapshot.Version,
			"pending":  pending,
		})
	}

	return http.HandlerFunc(fn)
}
