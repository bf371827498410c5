package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

const catalogKey = "catalog:offerings"

type CatalogCacheRepository struct {
	client KeyValue
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalogCacheRepository(client KeyValue, cfg config.RedisConfig, logger *slog.Logger) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		ttl:    cfg.CatalogTTL,
		logger: logger,
	}
}

// Get reports a miss as (nil, false, nil). A zero TTL disables the cache.
func (r *CatalogCacheRepository) Get(ctx context.Context) (booking.Catalog, bool, error) {
	if r.ttl <= 0 {
		return nil, false, nil
	}
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to read catalog cache", err)
	}

	var catalog booking.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to decode catalog cache", err)
	}
	return catalog, true, nil
}

func (r *CatalogCacheRepository) Set(ctx context.Context, catalog booking.Catalog) error {
	if r.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode catalog", err)
	}
	if err := r.client.Set(ctx, catalogKey, data, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to write catalog cache", err)
	}
	return nil
}
