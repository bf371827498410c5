package bootstrap

import (
	"go.uber.org/fx"

	"github.com/KostasTheodoro/GArts-Edu/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CacheModule,
	ProviderModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
