package main

import (
	"context"

	"github.com/rs/zerolog"

	"example.com/product-qa/internal/config"
	"example.com/product-qa/internal/infra/cache"
	"example.com/product-qa/internal/infra/catalog"
	"example.com/product-qa/internal/infra/persistence/mysql"
	"example.com/product-qa/internal/infra/persistence/postgres"
)

func newCatalogSource(cfg config.Catalog, log zerolog.Logger) catalog.Source {
	switch cfg.Source {
	case "mysql":
		return mysql.NewProductSource(cfg.MySQLDSN, cfg.LoadTimeout, log)
	case "postgres":
		return postgres.NewProductSource(cfg.PostgresDSN, cfg.LoadTimeout, log)
	default:
		return catalog.NewFileLoader(cfg.Path, log)
	}
}

// newAnswerCache falls back to the in-process cache when redis is unreachable.
func newAnswerCache(ctx context.Context, cfg config.Cache, log zerolog.Logger) cache.Cache {
	switch cfg.Driver {
	case "none":
		return cache.Nop{}
	case "redis":
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err == nil {
			return r
		}
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory answer cache")
	}
	return cache.NewMemory(cfg.MaxEntries)
}
