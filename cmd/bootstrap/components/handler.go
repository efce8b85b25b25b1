package components

import (
	"hotel-loyalty-core/internal/handler"
	"hotel-loyalty-core/internal/handler/api"
	"hotel-loyalty-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewLoyaltyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
