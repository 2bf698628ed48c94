package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/commission"
)

type Status string

const (
	StatusOpen    Status = "open"
	StatusSettled Status = "settled"
)

// Settlement is the financial entry derived from a booked booking. At most
// one exists per booking; creation is idempotent at the storage layer.
type Settlement struct {
	ID               uuid.UUID
	OrganizationID   uuid.UUID
	BookingID        uuid.UUID
	GrossAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	NetAmount        decimal.Decimal
	CommissionType   commission.Type
	CommissionValue  decimal.Decimal
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookingRef identifies a booked booking that still lacks a settlement;
// the background reconciler works through these.
type BookingRef struct {
	BookingID      uuid.UUID
	OrganizationID uuid.UUID
}

func NewFromSplit(organizationID, bookingID uuid.UUID, split commission.Split, rate commission.Rate, now time.Time) *Settlement {
	return &Settlement{
		ID:               uuid.New(),
		OrganizationID:   organizationID,
		BookingID:        bookingID,
		GrossAmount:      split.Gross,
		CommissionAmount: split.Commission,
		NetAmount:        split.Net,
		CommissionType:   rate.Type,
		CommissionValue:  rate.Value,
		Status:           StatusOpen,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
