package app

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app/config"
	apphttp "github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app/http"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/infra/db/postgres"
	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/logger"
)

func Run() {
	cfg := config.MustLoad()

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("logger setup")
	}

	db, err := postgres.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()

	router := apphttp.NewRouter(cfg, db)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
