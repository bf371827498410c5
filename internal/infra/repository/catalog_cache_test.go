//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/builder"
	"github.com/KostasTheodoro/GArts-Edu/tests/common/testutil"
)

func TestCatalogCacheGet(t *testing.T) {
	catalog := builder.StandardCatalog()
	encoded, err := json.Marshal(catalog)
	require.NoError(t, err)

	tests := []struct {
		name     string
		reply    *redis.StringCmd
		want     booking.Catalog
		wantHit  bool
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:    "hit",
			reply:   redis.NewStringResult(string(encoded), nil),
			want:    catalog,
			wantHit: true,
		},
		{
			name:  "miss",
			reply: redis.NewStringResult("", redis.Nil),
		},
		{
			name:     "store down",
			reply:    redis.NewStringResult("", errors.New("connection refused")),
			wantKind: infra.KindStoreFailure,
		},
		{
			name:     "garbage",
			reply:    redis.NewStringResult("{not json", nil),
			wantKind: infra.KindCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(MockKeyValue)
			kv.On("Get", mock.Anything, catalogKey).Return(tt.reply)
			repo := NewCatalogCacheRepository(kv, config.RedisConfig{CatalogTTL: time.Minute}, testutil.DiscardLogger())

			got, hit, err := repo.Get(context.Background())

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHit, hit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("catalog mismatch (-want +got):\n%s", diff)
			}
			kv.AssertExpectations(t)
		})
	}
}

func TestCatalogCacheSet(t *testing.T) {
	catalog := booking.Catalog{builder.NewOfferingBuilder().Build()}

	t.Run("writes with ttl", func(t *testing.T) {
		kv := new(MockKeyValue)
		var written []byte
		kv.On("Set", mock.Anything, catalogKey, mock.Anything, 5*time.Minute).
			Run(func(args mock.Arguments) { written = args.Get(2).([]byte) }).
			Return(redis.NewStatusResult("OK", nil))
		repo := NewCatalogCacheRepository(kv, config.RedisConfig{CatalogTTL: 5 * time.Minute}, testutil.DiscardLogger())

		require.NoError(t, repo.Set(context.Background(), catalog))

		var decoded booking.Catalog
		require.NoError(t, json.Unmarshal(written, &decoded))
		assert.Equal(t, catalog, decoded)
		kv.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		kv := new(MockKeyValue)
		kv.On("Set", mock.Anything, catalogKey, mock.Anything, time.Minute).
			Return(redis.NewStatusResult("", errors.New("READONLY")))
		repo := NewCatalogCacheRepository(kv, config.RedisConfig{CatalogTTL: time.Minute}, testutil.DiscardLogger())

		err := repo.Set(context.Background(), catalog)

		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("zero ttl disables the cache", func(t *testing.T) {
		kv := new(MockKeyValue)
		repo := NewCatalogCacheRepository(kv, config.RedisConfig{}, testutil.DiscardLogger())

		require.NoError(t, repo.Set(context.Background(), catalog))
		got, hit, err := repo.Get(context.Background())

		require.NoError(t, err)
		assert.False(t, hit)
		assert.Nil(t, got)
		kv.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
