package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripcore/internal/infra"
	"tripcore/internal/pkg/errs"
)

var ErrInventoryDayNotFound = errs.New("inventory day not found")

type InventoryReadStore interface {
	FindDay(ctx context.Context, organizationID, productID uuid.UUID, date time.Time) (*InventoryDayView, error)
}

type InventoryQueries interface {
	GetDay(ctx context.Context, organizationID, productID uuid.UUID, date time.Time) (*InventoryDayView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) GetDay(ctx context.Context, organizationID, productID uuid.UUID, date time.Time) (*InventoryDayView, error) {
	view, err := q.store.FindDay(ctx, organizationID, productID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryDayNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}
