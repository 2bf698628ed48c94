package components

import (
	"tripcore/internal/domain/supplier"
	"tripcore/internal/infra/readstore"
	repo_impl "tripcore/internal/infra/repository"
	supplier_impl "tripcore/internal/infra/supplier"
	"tripcore/internal/usecase/commands"
	"tripcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuditRepository,
			fx.As(new(commands.AuditRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettlementRepository,
			fx.As(new(commands.SettlementRepository)),
		),
		fx.Annotate(
			repo_impl.NewPartnerRepository,
			fx.As(new(commands.PartnerRepository)),
		),
		// Supplier integration
		fx.Annotate(
			supplier_impl.NewPassthroughAdapter,
			fx.As(new(supplier.Adapter)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditReadStore)),
		),
		fx.Annotate(
			readstore.NewSettlementReadStore,
			fx.As(new(queries.SettlementReadStore)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
	),
)
