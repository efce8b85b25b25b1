package components

import (
	"context"
	"time"

	"hotel-loyalty-core/internal/infra/notifier"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		func() notifier.Sink { return notifier.LogSink{} },
		func(pool *pgxpool.Pool, sink notifier.Sink) *notifier.Dispatcher {
			return notifier.NewDispatcher(pool, sink, 5*time.Second)
		},
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, d *notifier.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
