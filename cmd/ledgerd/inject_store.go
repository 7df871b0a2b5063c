package main

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/store/ledger"
	"github.com/pandodao/safe-ledger/store/seed"
	"github.com/spf13/viper"
)

var storeSet = wire.NewSet(
	provideLedgerStore,
)

func provideLedgerStore(v *viper.Viper, logger *slog.Logger) (core.LedgerStore, error) {
	users, transactions, err := seed.Load(v)
	if err != nil {
		return nil, err
	}

	logger.Info("seed loaded", "users", len(users), "transactions", len(transactions))
	return ledger.New(users, transactions), nil
}
