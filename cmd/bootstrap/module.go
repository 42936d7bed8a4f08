package bootstrap

import (
	"jobradar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.NotifyModule,
	components.HandlerModule,
	SchedulerModule,
)
