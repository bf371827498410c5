//go:build unit

package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/testutil"
)

var sessionNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func newSessionRepo(kv *MockKeyValue) *SessionRepository {
	return NewSessionRepository(kv, clock.NewMockClock(sessionNow), config.WizardConfig{SessionTTL: 30 * time.Minute}, testutil.DiscardLogger())
}

func TestSessionCreateAndGet(t *testing.T) {
	w := wizard.New(uuid.New(), sessionNow, time.UTC)
	key := sessionKey(w.ID())

	kv := new(MockKeyValue)
	var stored []byte
	kv.On("Set", mock.Anything, key, mock.AnythingOfType("[]uint8"), 30*time.Minute).
		Run(func(args mock.Arguments) { stored = args.Get(2).([]byte) }).
		Return(redis.NewStatusResult("OK", nil))
	repo := newSessionRepo(kv)

	require.NoError(t, repo.Create(context.Background(), w))

	kv.On("Get", mock.Anything, key).Return(redis.NewStringResult(string(stored), nil))
	got, err := repo.Get(context.Background(), w.ID())

	require.NoError(t, err)
	assert.Equal(t, w.ID(), got.ID())
	assert.Equal(t, w.Step(), got.Step())
	assert.Equal(t, w.CalendarView(), got.CalendarView())
	kv.AssertExpectations(t)
}

func TestSessionGetErrors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		reply     *redis.StringCmd
		want      infra.RepositoryErrorKind
		wantLevel string
	}{
		{"expired or unknown", redis.NewStringResult("", redis.Nil), infra.KindNotFound, "level=DEBUG"},
		{"store down", redis.NewStringResult("", errors.New("dial tcp: refused")), infra.KindStoreFailure, "level=ERROR"},
		{"corrupted", redis.NewStringResult(`{"step":`, nil), infra.KindCorrupted, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(MockKeyValue)
			kv.On("Get", mock.Anything, sessionKey(id)).Return(tt.reply)
			var logs bytes.Buffer
			repo := newSessionRepo(kv)
			repo.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

			got, err := repo.Get(context.Background(), id)

			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.Contains(t, logs.String(), tt.wantLevel)
		})
	}
}

func TestSessionUpdateWatchFailures(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		watchErr error
		want     infra.RepositoryErrorKind
	}{
		{"lost optimistic race", redis.TxFailedErr, infra.KindConflict},
		{"connection error", errors.New("broken pipe"), infra.KindStoreFailure},
		{"not found inside transaction", infra.RepositoryError{Kind: infra.KindNotFound}, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(MockKeyValue)
			kv.On("Watch", mock.Anything, []string{sessionKey(id)}).Return(tt.watchErr)

			got, err := newSessionRepo(kv).Update(context.Background(), id, func(*wizard.Wizard) error { return nil })

			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
		})
	}
}

func TestSessionTTLFollowsSuccessHold(t *testing.T) {
	w := wizard.New(uuid.New(), sessionNow, time.UTC)
	closes := sessionNow.Add(time.Second)
	state := w.State()
	state.ClosesAt = &closes
	held := wizard.Restore(state)

	kv := new(MockKeyValue)
	kv.On("Set", mock.Anything, sessionKey(held.ID()), mock.Anything, time.Second).
		Return(redis.NewStatusResult("OK", nil))

	require.NoError(t, newSessionRepo(kv).Create(context.Background(), held))
	kv.AssertExpectations(t)
}

func TestSessionDelete(t *testing.T) {
	id := uuid.New()

	kv := new(MockKeyValue)
	kv.On("Del", mock.Anything, []string{sessionKey(id)}).Return(redis.NewIntResult(1, nil)).Once()
	kv.On("Del", mock.Anything, []string{sessionKey(id)}).Return(redis.NewIntResult(0, errors.New("timeout"))).Once()
	repo := newSessionRepo(kv)

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.True(t, infra.IsKind(repo.Delete(context.Background(), id), infra.KindStoreFailure))
}
