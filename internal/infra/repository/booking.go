package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/booking"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (
			id, organization_id, product_id, partner_id, travel_date, pax,
			state, amount, currency, amend_seq,
			inventory_consumed, inventory_released, supplier_booking_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID(), b.OrganizationID(), b.ProductID(), b.PartnerID(), b.TravelDate(), b.Pax(),
		b.State().String(), b.Amount().String(), b.Currency(), b.AmendSeq(),
		b.InventoryConsumed(), b.InventoryReleased(), b.SupplierBookingID(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err, kindFromPgError(err))
	}
	return nil
}

// FindByID is organization-scoped: a booking owned by another org is
// reported as not found, never as a different error.
func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, organizationID, bookingID uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx,
		`SELECT id, organization_id, product_id, partner_id, travel_date, pax,
		        state, amount::text, currency, amend_seq,
		        inventory_consumed, inventory_released, supplier_booking_id,
		        created_at, updated_at
		 FROM bookings
		 WHERE organization_id = $1 AND id = $2`,
		organizationID, bookingID,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings
		 SET state = $3, amount = $4::numeric, amend_seq = $5,
		     inventory_consumed = $6, inventory_released = $7,
		     supplier_booking_id = $8, updated_at = $9
		 WHERE organization_id = $1 AND id = $2`,
		b.OrganizationID(), b.ID(),
		b.State().String(), b.Amount().String(), b.AmendSeq(),
		b.InventoryConsumed(), b.InventoryReleased(),
		b.SupplierBookingID(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err, kindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, organizationID, productID uuid.UUID
		partnerID                     *uuid.UUID
		travelDate                    time.Time
		pax, amendSeq                 int32
		state, amountText, currency   string
		consumed, released            bool
		supplierBookingID             *string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(
		&id, &organizationID, &productID, &partnerID, &travelDate, &pax,
		&state, &amountText, &currency, &amendSeq,
		&consumed, &released, &supplierBookingID,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, organizationID, productID, partnerID, travelDate, pax,
		booking.State(state), amount, currency, amendSeq,
		consumed, released, supplierBookingID,
		createdAt, updatedAt,
	), nil
}
