package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/frasehub/frasehub/internal/app"
	"github.com/frasehub/frasehub/internal/cache"
	"github.com/frasehub/frasehub/internal/config"
	"github.com/frasehub/frasehub/internal/db"
	"github.com/frasehub/frasehub/internal/logger"
	"github.com/frasehub/frasehub/internal/server"
	"github.com/frasehub/frasehub/internal/service/feed"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Overlay site_settings rows on top of the env defaults
	if err := config.ApplySiteSettings(cfg, database); err != nil {
		log.Warn("failed to load site settings, using env defaults", "err", err)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	// Inject logger into app context
	appCtx := app.New(database, redisCache, cfg, log)

	registrars := []server.Registrar{
		feed.NewRegistrar(appCtx),
	}

	if cfg.App.Env == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr, "ads_frequency", cfg.Ads.Frequency, "page_size", cfg.Feed.PageSize)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
