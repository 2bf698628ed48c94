package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidPax          = errors.New("pax must be at least 1")
	ErrInvalidTravelDate   = errors.New("travel date is required")
	ErrAmendNotAllowed     = errors.New("booking can no longer be amended")
	ErrAlreadyConsumed     = errors.New("inventory already consumed")
	ErrAlreadyReleased     = errors.New("inventory already released")
	ErrNothingToRelease    = errors.New("no inventory hold to release")
)

// Booking is the central entity of the lifecycle engine. The orchestrator is
// its only writer; state changes go through ApplyTransition exclusively.
type Booking struct {
	id                uuid.UUID
	organizationID    uuid.UUID
	productID         uuid.UUID
	travelDate        time.Time
	pax               int32
	partnerID         *uuid.UUID
	state             State
	amount            decimal.Decimal
	currency          string
	amendSeq          int32
	inventoryConsumed bool
	inventoryReleased bool
	supplierBookingID *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewBooking(
	organizationID, productID uuid.UUID,
	partnerID *uuid.UUID,
	travelDate time.Time,
	pax int32,
	amount decimal.Decimal,
	currency, supportedCurrency string,
	now time.Time,
) (*Booking, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if currency != supportedCurrency {
		return nil, ErrUnsupportedCurrency
	}
	if pax < 1 {
		return nil, ErrInvalidPax
	}
	if travelDate.IsZero() {
		return nil, ErrInvalidTravelDate
	}

	return &Booking{
		id:             uuid.New(),
		organizationID: organizationID,
		productID:      productID,
		partnerID:      partnerID,
		travelDate:     travelDate,
		pax:            pax,
		state:          StateDraft,
		amount:         amount,
		currency:       currency,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id, organizationID, productID uuid.UUID,
	partnerID *uuid.UUID,
	travelDate time.Time,
	pax int32,
	state State,
	amount decimal.Decimal,
	currency string,
	amendSeq int32,
	inventoryConsumed, inventoryReleased bool,
	supplierBookingID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		organizationID:    organizationID,
		productID:         productID,
		partnerID:         partnerID,
		travelDate:        travelDate,
		pax:               pax,
		state:             state,
		amount:            amount,
		currency:          currency,
		amendSeq:          amendSeq,
		inventoryConsumed: inventoryConsumed,
		inventoryReleased: inventoryReleased,
		supplierBookingID: supplierBookingID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ApplyTransition validates and applies a state change. On failure the
// entity is untouched and the returned error carries both states.
func (b *Booking) ApplyTransition(target State, now time.Time) error {
	if err := ValidateTransition(b.state, target); err != nil {
		return err
	}
	b.state = target
	b.touch(now)
	return nil
}

// Amend bumps the amendment counter and replaces the gross amount. The seq
// orders and deduplicates amendment events downstream.
func (b *Booking) Amend(newAmount decimal.Decimal, now time.Time) error {
	if b.state.IsTerminal() {
		return ErrAmendNotAllowed
	}
	if newAmount.IsNegative() {
		return ErrNegativeAmount
	}
	b.amount = newAmount
	b.amendSeq++
	b.touch(now)
	return nil
}

func (b *Booking) MarkInventoryConsumed(now time.Time) error {
	if b.inventoryConsumed {
		return ErrAlreadyConsumed
	}
	b.inventoryConsumed = true
	b.touch(now)
	return nil
}

// MarkInventoryReleased is the double-release guard: the ledger itself has
// no notion of booking identity, so the hold/release edge is tracked here.
func (b *Booking) MarkInventoryReleased(now time.Time) error {
	if !b.inventoryConsumed {
		return ErrNothingToRelease
	}
	if b.inventoryReleased {
		return ErrAlreadyReleased
	}
	b.inventoryReleased = true
	b.touch(now)
	return nil
}

func (b *Booking) SetSupplierBookingID(id string, now time.Time) {
	b.supplierBookingID = &id
	b.touch(now)
}

func (b *Booking) NeedsInventoryRelease() bool {
	return b.inventoryConsumed && !b.inventoryReleased
}

func (b *Booking) touch(now time.Time) {
	// updated_at is monotonic non-decreasing even when clocks skew
	if now.After(b.updatedAt) {
		b.updatedAt = now
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) OrganizationID() uuid.UUID  { return b.organizationID }
func (b *Booking) ProductID() uuid.UUID       { return b.productID }
func (b *Booking) PartnerID() *uuid.UUID      { return b.partnerID }
func (b *Booking) TravelDate() time.Time      { return b.travelDate }
func (b *Booking) Pax() int32                 { return b.pax }
func (b *Booking) State() State               { return b.state }
func (b *Booking) Amount() decimal.Decimal    { return b.amount }
func (b *Booking) Currency() string           { return b.currency }
func (b *Booking) AmendSeq() int32            { return b.amendSeq }
func (b *Booking) InventoryConsumed() bool    { return b.inventoryConsumed }
func (b *Booking) InventoryReleased() bool    { return b.inventoryReleased }
func (b *Booking) SupplierBookingID() *string { return b.supplierBookingID }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
