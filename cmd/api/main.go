package main

import (
	"context"
	"os/signal"
	"syscall"

	"fmrental_prestige/internal/adapter/http/routes"
	"fmrental_prestige/internal/infrastructure/config"
	"fmrental_prestige/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           FM Rental Prestige API
// @version         1.0
// @description     Reservations, check-in and reviews for FM Rental Prestige, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /

func main() {
	cfg := config.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
