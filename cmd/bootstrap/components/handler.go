package components

import (
	"tripcore/internal/handler"
	"tripcore/internal/handler/api"
	"tripcore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewInventoryHandler,
		api.NewPartnerHandler,
		api.NewSettlementHandler,
		middleware.NewTenantMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
