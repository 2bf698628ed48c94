package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripcore/internal/domain/eventlog"
	reqdto "tripcore/internal/handler/dto/request"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/errs"
)

type InventoryCommands interface {
	SetCapacity(ctx context.Context, organizationID uuid.UUID, actor string, req reqdto.SetCapacityRequest) error
}

type inventoryUseCaseImpl struct {
	inventoryRepo InventoryRepository
	auditRepo     AuditRepository
	db            *pgxpool.Pool
	clock         clock.Clock
}

func NewInventoryUseCase(
	inventoryRepo InventoryRepository,
	auditRepo AuditRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) InventoryCommands {
	return &inventoryUseCaseImpl{
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		db:            db,
		clock:         clock,
	}
}

// SetCapacity is the operator entry point for the availability calendar.
// Last write wins; a lowered total never claws back units already held.
func (u *inventoryUseCaseImpl) SetCapacity(
	ctx context.Context,
	organizationID uuid.UUID,
	actor string,
	req reqdto.SetCapacityRequest,
) error {
	day, err := req.ToDomain(organizationID)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := u.inventoryRepo.SetCapacity(ctx, u.db, day); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, auditErr := u.auditRepo.Append(ctx, u.db, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         "inventory.set_capacity",
		Actor:          actor,
		After: map[string]any{
			"product_id":     day.ProductID,
			"date":           day.Date,
			"capacity_total": day.CapacityTotal,
			"closed":         day.Closed,
			"min_stay":       day.MinStay,
			"max_stay":       day.MaxStay,
		},
	}); auditErr != nil {
		slog.Warn("failed to append inventory audit entry",
			"product_id", day.ProductID, "error", auditErr)
	}
	return nil
}
