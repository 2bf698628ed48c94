package queries

import (
	"context"

	"github.com/google/uuid"

	"tripcore/internal/infra"
	"tripcore/internal/pkg/errs"
)

var ErrSettlementNotFound = errs.New("settlement not found")

type SettlementReadStore interface {
	FindByBookingID(ctx context.Context, organizationID, bookingID uuid.UUID) (*SettlementView, error)
}

type SettlementQueries interface {
	GetForBooking(ctx context.Context, organizationID, bookingID uuid.UUID) (*SettlementView, error)
}

type settlementQueriesImpl struct {
	store SettlementReadStore
}

func NewSettlementQueries(store SettlementReadStore) SettlementQueries {
	return &settlementQueriesImpl{store: store}
}

func (q *settlementQueriesImpl) GetForBooking(ctx context.Context, organizationID, bookingID uuid.UUID) (*SettlementView, error) {
	view, err := q.store.FindByBookingID(ctx, organizationID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}
