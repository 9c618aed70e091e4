package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/merchline/merchline/internal/config"
)

// Module wires the catalog cache. Without a Redis address the cache degrades
// to a noop and every listing goes to the database.
var Module = fx.Provide(newCatalogCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newCatalogCache(p cacheParams) CatalogCache {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("catalog cache disabled, no redis address configured")
		return NoopCatalogCache{}
	}

	redisCache := NewRedisCatalogCache(p.Config.RedisAddress)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := redisCache.Ping(ctx); err != nil {
				p.Logger.Warn("catalog cache unreachable", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return redisCache.Close()
		},
	})
	return redisCache
}
