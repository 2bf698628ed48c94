package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/usecase/queries"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(pool *pgxpool.Pool) *InventoryReadStore {
	return &InventoryReadStore{db: pool}
}

func (r *InventoryReadStore) FindDay(ctx context.Context, organizationID, productID uuid.UUID, date time.Time) (*queries.InventoryDayView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT product_id, date, capacity_total, capacity_available, closed, min_stay, max_stay
		 FROM inventory
		 WHERE organization_id = $1 AND product_id = $2 AND date = $3`,
		organizationID, productID, date,
	)

	var v queries.InventoryDayView
	err := row.Scan(&v.ProductID, &v.Date, &v.CapacityTotal, &v.CapacityAvailable, &v.Closed, &v.MinStay, &v.MaxStay)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inventory day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory day", err)
	}
	return &v, nil
}
