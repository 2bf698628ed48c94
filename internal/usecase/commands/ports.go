package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/booking"
	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/eventlog"
	"tripcore/internal/domain/inventory"
	"tripcore/internal/domain/partner"
	"tripcore/internal/domain/settlement"
	"tripcore/internal/infra/db"
)

// Write-side ports, declared caller-side so the infra layer depends on
// usecase contracts and not the other way round. Repositories accept the
// transaction handle explicitly; passing the pool runs the statement outside
// any transaction.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, organizationID, bookingID uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type InventoryRepository interface {
	Consume(ctx context.Context, tx db.DBTX, organizationID, productID uuid.UUID, date time.Time, pax int32) (bool, error)
	Release(ctx context.Context, tx db.DBTX, organizationID, productID uuid.UUID, date time.Time, pax int32) error
	SetCapacity(ctx context.Context, tx db.DBTX, day *inventory.Day) error
}

type EventRepository interface {
	Append(ctx context.Context, tx db.DBTX, e *eventlog.Entry) (uuid.UUID, error)
	AppendIdempotent(ctx context.Context, tx db.DBTX, e *eventlog.Entry) (uuid.UUID, bool, error)
}

type AuditRepository interface {
	Append(ctx context.Context, tx db.DBTX, e *eventlog.AuditEntry) (uuid.UUID, error)
}

type SettlementRepository interface {
	CreateIfAbsent(ctx context.Context, tx db.DBTX, s *settlement.Settlement) (*settlement.Settlement, bool, error)
	FindByBookingID(ctx context.Context, tx db.DBTX, organizationID, bookingID uuid.UUID) (*settlement.Settlement, error)
	MarkSettled(ctx context.Context, tx db.DBTX, organizationID, settlementID uuid.UUID, now time.Time) (*settlement.Settlement, error)
	FindBookedWithoutSettlement(ctx context.Context, limit int32) ([]settlement.BookingRef, error)
}

type PartnerRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *partner.Partner) error
	UpsertProductRate(ctx context.Context, tx db.DBTX, organizationID, partnerID, productID uuid.UUID, rate commission.Rate) error
	FindProductRate(ctx context.Context, tx db.DBTX, organizationID, partnerID, productID uuid.UUID) (*commission.Rate, error)
	FindDefaultPercent(ctx context.Context, tx db.DBTX, organizationID, partnerID uuid.UUID) (*decimal.Decimal, error)
}
