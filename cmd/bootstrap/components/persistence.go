package components

import (
	"hotel-loyalty-core/internal/infra/readstore"
	"hotel-loyalty-core/internal/infra/uow"
	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, cfg.Loyalty.ScopeTimeout)
		},
		readstore.NewUserReadStore,
		readstore.NewBookingReadStore,
		readstore.NewLoyaltyReadStore,
	),
)
