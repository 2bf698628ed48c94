package queries

import (
	"context"

	"github.com/google/uuid"

	"tripcore/internal/infra"
	"tripcore/internal/pkg/errs"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrOrganizationNotFound = errs.New("organization not found")
	ErrQueryFailed          = errs.New("query failed")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, organizationID, bookingID uuid.UUID) (*BookingView, error)
	List(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ExposureSummary(ctx context.Context, organizationID uuid.UUID) (*ExposureSummaryView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, organizationID, bookingID uuid.UUID) (*BookingView, error)
	List(ctx context.Context, organizationID uuid.UUID, limit int) ([]*BookingListItem, error)
	ExposureSummary(ctx context.Context, organizationID uuid.UUID) (*ExposureSummaryView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, organizationID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, organizationID, bookingID)
	if err != nil {
		// A booking in another org is indistinguishable from a missing one.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, organizationID uuid.UUID, limit int) ([]*BookingListItem, error) {
	items, err := q.store.List(ctx, organizationID, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ExposureSummary(ctx context.Context, organizationID uuid.UUID) (*ExposureSummaryView, error) {
	summary, err := q.store.ExposureSummary(ctx, organizationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return summary, nil
}
