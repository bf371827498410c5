package bootstrap

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra/cache"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra/repository"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewRedis,
			fx.As(new(repository.KeyValue)),
			fx.As(new(repository.Transactional)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
