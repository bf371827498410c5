//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/cmd/bootstrap"
	"github.com/KostasTheodoro/GArts-Edu/cmd/bootstrap/components"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/clock"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/config"
)

// redis ships 16 logical databases; each suite takes its own
const redisDatabases = 16

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	nextRedisDB        atomic.Int32
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-suite environment
// ------------------------------------------------------------
type environment struct {
	router   *gin.Engine
	cfg      config.Config
	redis    *redis.Client
	provider *ProviderStub
	clock    *clock.MockClock
}

func setupE2EEnvironment(t *testing.T) environment {
	redisInfo := startContainers(t)

	provider := NewProviderStub()
	t.Cleanup(provider.Close)

	cfg := createTestConfig(redisInfo, provider.URL())
	clk := clock.NewMockClock(time.Date(2025, 3, 12, 10, 0, 0, 0, cfg.Provider.Location()))

	router, app := buildE2EApp(cfg, clk)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	t.Cleanup(func() { _ = client.Close() })

	slog.Info("e2e environment ready",
		"redis_addr", cfg.Redis.Addr,
		"redis_db", cfg.Redis.DB,
		"provider_url", provider.URL())

	return environment{router: router, cfg: cfg, redis: client, provider: provider, clock: clk}
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		// shared by every suite in the process; ryuk removes it afterwards
		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
	})
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Application
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, clk *clock.MockClock) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.ProviderModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}
	return router, app
}

func createTestConfig(redisInfo ContainerInfo, providerURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Redis.Addr = fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port())
	cfg.Redis.DB = int(nextRedisDB.Add(1)-1) % redisDatabases
	cfg.Provider.BaseURL = providerURL
	return cfg
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Config   config.Config
	Redis    *redis.Client
	Provider *ProviderStub
	Clock    *clock.MockClock
}

func (s *SharedSuite) SetupSuite() {
	env := setupE2EEnvironment(s.T())
	s.Router = env.router
	s.Config = env.cfg
	s.Redis = env.redis
	s.Provider = env.provider
	s.Clock = env.clock
}

// SetupSubTest starts every case from an empty store, default fixtures and
// the pinned clock.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "failed to flush redis")
	s.Provider.Reset()
	s.Clock.Set(time.Date(2025, 3, 12, 10, 0, 0, 0, s.Config.Provider.Location()))
}
