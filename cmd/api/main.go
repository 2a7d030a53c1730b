// Command api runs the events HTTP server.
//
// @title        Events API
// @version      1.0
// @description  Events management service: browse events, register for them,
// @description  and administer the catalogue.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventhub/events-api/internal/api"
	"github.com/eventhub/events-api/internal/core/service"
	"github.com/eventhub/events-api/internal/infrastructure/config"
	"github.com/eventhub/events-api/internal/infrastructure/db/postgres"
	"github.com/eventhub/events-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	pool, err := postgres.Connect(ctx, cfg.DB.Postgres())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// --- Dependencies, constructed once and passed down ---
	userRepo := postgres.NewUserRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	regRepo := postgres.NewRegistrationRepository(pool)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokens, log)
	eventSvc := service.NewEventService(eventRepo, log)
	regSvc := service.NewRegistrationService(regRepo, eventRepo, log)

	// Seed the bootstrap admin before accepting traffic.
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed bootstrap admin")
	}

	e := api.NewRouter(api.Deps{
		Pool:          pool,
		Tokens:        tokens,
		Auth:          authSvc,
		Events:        eventSvc,
		Registrations: regSvc,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
