package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotels_merge/internal/adapters/http_server"
	"hotels_merge/internal/adapters/observability"
	redisad "hotels_merge/internal/adapters/redis"
	"hotels_merge/internal/adapters/suppliers"
	"hotels_merge/internal/app"
	"hotels_merge/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	agg := app.NewAggregateService(suppliers.New(cfg.FetchRPS), suppliers.Registry(cfg.SupplierBase))
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(agg, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Str("suppliers", cfg.SupplierBase).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
