package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/handler/api"
	"github.com/pandodao/safe-ledger/handler/hc"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

var serverSet = wire.NewSet(
	api.New,
	provideServer,
)

func provideCors(v *viper.Viper) *cors.Cors {
	origins := v.GetStringSlice("server.cors_origins")
	if len(origins) == 0 {
		return cors.AllowAll()
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})
}

func provideServer(v *viper.Viper, apiHandler *api.Server, ledgers core.LedgerStore) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(provideCors(v).Handler)

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version, ledgers))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
