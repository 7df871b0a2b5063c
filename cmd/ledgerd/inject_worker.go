package main

import (
	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/worker/settler"
	"github.com/spf13/viper"
)

var workerSet = wire.NewSet(
	provideSettlerConfig,
	settler.New,
)

func provideSettlerConfig(v *viper.Viper) settler.Config {
	return settler.Config{
		Interval: v.GetDuration("settler.interval"),
	}
}
