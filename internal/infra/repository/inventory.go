package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripcore/internal/domain/inventory"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
)

// InventoryRepository is the ledger's storage primitive. Capacity is only
// ever mutated through single conditional UPDATEs; there is no
// read-then-write anywhere in this file.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Consume atomically holds pax units for the day. A false result means sold
// out (or closed, or no record) and is a normal signal, not an error.
func (r *InventoryRepository) Consume(ctx context.Context, tx db.DBTX, organizationID, productID uuid.UUID, date time.Time, pax int32) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE inventory
		 SET capacity_available = capacity_available - $4
		 WHERE organization_id = $1 AND product_id = $2 AND date = $3
		   AND closed = false
		   AND capacity_available >= $4`,
		organizationID, productID, date, pax,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume inventory", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Release returns pax units, clamped at the configured total. A missing
// record is treated as a no-op: the hold it would undo cannot exist either.
func (r *InventoryRepository) Release(ctx context.Context, tx db.DBTX, organizationID, productID uuid.UUID, date time.Time, pax int32) error {
	_, err := tx.Exec(ctx,
		`UPDATE inventory
		 SET capacity_available = LEAST(capacity_available + $4, capacity_total)
		 WHERE organization_id = $1 AND product_id = $2 AND date = $3`,
		organizationID, productID, date, pax,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release inventory", err)
	}
	return nil
}

// SetCapacity upserts a day record. Operator-entered data, last write wins.
func (r *InventoryRepository) SetCapacity(ctx context.Context, tx db.DBTX, day *inventory.Day) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO inventory (
			organization_id, product_id, date,
			capacity_total, capacity_available, closed, min_stay, max_stay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id, product_id, date) DO UPDATE
		SET capacity_total = EXCLUDED.capacity_total,
		    capacity_available = EXCLUDED.capacity_available,
		    closed = EXCLUDED.closed,
		    min_stay = EXCLUDED.min_stay,
		    max_stay = EXCLUDED.max_stay`,
		day.OrganizationID, day.ProductID, day.Date,
		day.CapacityTotal, day.CapacityAvailable, day.Closed, day.MinStay, day.MaxStay,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set inventory capacity", err, kindFromPgError(err))
	}
	return nil
}
