package bootstrap

import (
	"hotel-loyalty-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.CollaboratorModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.NotifierModule,
)
