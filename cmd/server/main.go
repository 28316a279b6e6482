package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nenad034/isplate-backend/internal/api"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
	"github.com/Nenad034/isplate-backend/internal/core/service"
	"github.com/Nenad034/isplate-backend/internal/infrastructure/config"
	mongodb "github.com/Nenad034/isplate-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Nenad034/isplate-backend/internal/infrastructure/db/redis"
	"github.com/Nenad034/isplate-backend/internal/infrastructure/gemini"
	"github.com/Nenad034/isplate-backend/pkg/logger"
)

// @title        Isplate API
// @version      1.0
// @description  Back-office record management for payments to hospitality suppliers and hotels.
// @BasePath     /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	if err := service.SeedAdmin(ctx, userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// Redis is an optimization, not a dependency: the snapshot cache is
	// skipped when the connection cannot be established.
	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, snapshot caching disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	var remote ports.RemoteModel
	if cfg.Gemini.APIKey != "" {
		remote = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		log.Info().Str("model", cfg.Gemini.Model).Msg("remote assistant model enabled")
	}

	e := api.NewRouter(db, rdb, remote, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
