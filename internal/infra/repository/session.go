package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

const sessionKeyPrefix = "wizard:session:"

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// SessionRepository stores each wizard as one JSON value. Entries expire after
// the idle timeout, or at the end of the success hold once submitted.
type SessionRepository struct {
	client Transactional
	clock  clock.Clock
	idle   time.Duration
	logger *slog.Logger
}

func NewSessionRepository(client Transactional, clock clock.Clock, cfg config.WizardConfig, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{
		client: client,
		clock:  clock,
		idle:   cfg.SessionTTL,
		logger: logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, w *wizard.Wizard) error {
	data, err := json.Marshal(w.State())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode wizard session", err)
	}
	if err := r.client.Set(ctx, sessionKey(w.ID()), data, r.ttl(w)).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to create wizard session", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*wizard.Wizard, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		return nil, r.readError(err)
	}
	return r.decode(data)
}

// Update runs fn under WATCH. Errors returned by fn are passed through as-is
// and nothing is written.
func (r *SessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(w *wizard.Wizard) error) (*wizard.Wizard, error) {
	key := sessionKey(id)

	var (
		updated *wizard.Wizard
		fnErr   error
	)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return r.readError(err)
		}
		w, err := r.decode(data)
		if err != nil {
			return err
		}

		if err := fn(w); err != nil {
			fnErr = err
			return err
		}

		out, err := json.Marshal(w.State())
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode wizard session", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl(w))
			return nil
		})
		if err != nil {
			return err
		}
		updated = w
		return nil
	}, key)

	switch {
	case err == nil:
		return updated, nil
	case fnErr != nil:
		return nil, fnErr
	case errors.Is(err, redis.TxFailedErr):
		return nil, infra.WrapRepoErr(r.logger, infra.KindConflict, "wizard session modified concurrently", err)
	}
	if _, ok := infra.AsRepositoryError(err); ok {
		return nil, err
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to update wizard session", err)
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete wizard session", err)
	}
	return nil
}

func (r *SessionRepository) ttl(w *wizard.Wizard) time.Duration {
	return w.ExpiresIn(r.clock.Now(), r.idle)
}

func (r *SessionRepository) readError(err error) error {
	if errors.Is(err, redis.Nil) {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "wizard session not found", nil)
	}
	return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to read wizard session", err)
}

func (r *SessionRepository) decode(data []byte) (*wizard.Wizard, error) {
	var s wizard.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to decode wizard session", err)
	}
	return wizard.Restore(s), nil
}
