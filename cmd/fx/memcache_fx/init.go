package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"trivia/internal/config"
	"trivia/internal/infra"
	mem "trivia/pkg/memcache"
)

var Module = fx.Provide(provideCategoryStore)

// provideCategoryStore uses Redis when REDIS_URL is set and falls back to
// the in-process cache otherwise.
func provideCategoryStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.CategoryStore, error) {
	if cfg.RedisURL == "" {
		return mem.NewCategoryCache(cfg.CategoryCacheTTL), nil
	}

	client, err := infra.ConnectRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	log.Info("category cache backed by redis")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return mem.NewRedisCategoryCache(client, cfg.CategoryCacheTTL, log), nil
}
