package components

import (
	"tripcore/internal/pkg/clock"
	"tripcore/internal/usecase/commands"
	"tripcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewSettlementUseCase,
		commands.NewInventoryUseCase,
		commands.NewPartnerUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewEventQueries,
		queries.NewAuditQueries,
		queries.NewSettlementQueries,
		queries.NewInventoryQueries,
	),
)
