package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/usecase/shared"
)

const idempotencyKeyPrefix = "idempotency:booking:"

type IdempotencyRepository struct {
	client KeyValue
	logger *slog.Logger
}

func NewIdempotencyRepository(client KeyValue, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{
		client: client,
		logger: logger,
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	data, err := r.client.Get(ctx, idempotencyKeyPrefix+key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "idempotency key not found", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to get idempotency key", err)
	}

	var rec shared.IdempotencyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to decode idempotency record", err)
	}
	return &rec, nil
}

// Claim takes the key with SETNX, so of two concurrent claims only one wins.
func (r *IdempotencyRepository) Claim(ctx context.Context, rec shared.IdempotencyRecord, ttl time.Duration) (bool, error) {
	rec.Status = shared.IdempotencyProcessing
	data, err := json.Marshal(rec)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode idempotency record", err)
	}
	claimed, err := r.client.SetNX(ctx, idempotencyKeyPrefix+rec.Key.String(), data, ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to claim idempotency key", err)
	}
	if !claimed {
		r.logger.Debug("idempotency key already held", slog.String("key", rec.Key.String()))
	}
	return claimed, nil
}

// Complete replaces the claim with the finished record.
func (r *IdempotencyRepository) Complete(ctx context.Context, rec shared.IdempotencyRecord, ttl time.Duration) error {
	rec.Status = shared.IdempotencyCompleted
	data, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode idempotency record", err)
	}
	if err := r.client.Set(ctx, idempotencyKeyPrefix+rec.Key.String(), data, ttl).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to complete idempotency key", err)
	}
	return nil
}

// Release frees a key whose request failed so it can be retried.
func (r *IdempotencyRepository) Release(ctx context.Context, key uuid.UUID) error {
	if err := r.client.Del(ctx, idempotencyKeyPrefix+key.String()).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to release idempotency key", err)
	}
	return nil
}
