package main

import (
	"context"
	"os"

	"barbearia/internal/adapter/http/routes"
	"barbearia/internal/config"
	"barbearia/internal/infrastructure/logging"
	"barbearia/internal/infrastructure/telemetry"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Barbearia API
// @version         1.0
// @description     Barbershop console: catalog, clients, appointments, staff, checkout and sales reports.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("failed to run the application")
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.Environment, cfg.ServiceName)

	shutdown, err := telemetry.InitTracer(context.Background(), cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("tracer shutdown")
		}
	}()

	return routes.Run(cfg)
}
