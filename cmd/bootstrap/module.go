package bootstrap

import (
	"cleaning-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ScheduleModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
