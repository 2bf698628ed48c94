package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, organizationID, bookingID uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, organization_id, product_id, travel_date, pax,
		        state, amount::text, currency, amend_seq,
		        inventory_consumed, inventory_released, supplier_booking_id,
		        created_at, updated_at
		 FROM bookings
		 WHERE organization_id = $1 AND id = $2`,
		organizationID, bookingID,
	)

	var (
		v          queries.BookingView
		amountText string
	)
	err := row.Scan(
		&v.ID, &v.OrganizationID, &v.ProductID, &v.TravelDate, &v.Pax,
		&v.State, &amountText, &v.Currency, &v.AmendSeq,
		&v.InventoryConsumed, &v.InventoryReleased, &v.SupplierBookingID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	if v.Amount, err = decimal.NewFromString(amountText); err != nil {
		return nil, infra.WrapRepoErr("invalid booking amount", err)
	}
	return &v, nil
}

func (r *BookingReadStore) List(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, travel_date, state, amount::text, currency, created_at
		 FROM bookings
		 WHERE organization_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		organizationID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item       queries.BookingListItem
			amountText string
		)
		if err := rows.Scan(&item.ID, &item.ProductID, &item.TravelDate, &item.State, &amountText, &item.Currency, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		if item.Amount, err = decimal.NewFromString(amountText); err != nil {
			return nil, infra.WrapRepoErr("invalid booking amount", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return items, nil
}

// ExposureSummary aggregates all booked bookings against the org's credit
// limit in one round trip.
func (r *BookingReadStore) ExposureSummary(ctx context.Context, organizationID uuid.UUID) (*queries.ExposureSummaryView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT o.credit_limit::text,
		        COALESCE(SUM(b.amount) FILTER (WHERE b.state = 'booked'), 0)::text,
		        COUNT(b.id) FILTER (WHERE b.state = 'booked')
		 FROM organizations o
		 LEFT JOIN bookings b ON b.organization_id = o.id
		 WHERE o.id = $1
		 GROUP BY o.credit_limit`,
		organizationID,
	)

	var (
		limitText, exposureText string
		bookedCount             int64
	)
	err := row.Scan(&limitText, &exposureText, &bookedCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("organization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to compute exposure summary", err)
	}

	creditLimit, err := decimal.NewFromString(limitText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid credit limit", err)
	}
	exposure, err := decimal.NewFromString(exposureText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid exposure total", err)
	}

	return &queries.ExposureSummaryView{
		CreditLimit:     creditLimit,
		TotalExposure:   exposure,
		AvailableCredit: creditLimit.Sub(exposure),
		BookedCount:     bookedCount,
	}, nil
}
