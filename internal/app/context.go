package app

import (
	"log/slog"

	"github.com/frasehub/frasehub/internal/cache"
	"github.com/frasehub/frasehub/internal/config"
	"gorm.io/gorm"
)

// AppContext holds shared dependencies (DB, Redis, config, logger).
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Config     *config.Config
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, cfg *config.Config, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Config:     cfg,
		Logger:     logger,
	}
}
