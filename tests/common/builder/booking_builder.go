//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tripcore/internal/domain/booking"
	reqdto "tripcore/internal/handler/dto/request"
	"tripcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	OrganizationID uuid.UUID
	ProductID      uuid.UUID
	PartnerID      *uuid.UUID
	TravelDate     time.Time
	Pax            int32
	Amount         decimal.Decimal
	Currency       string
	State          dombooking.State
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		OrganizationID: uuid.New(),
		ProductID:      uuid.New(),
		TravelDate:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Pax:            2,
		Amount:         decimal.NewFromInt(1000),
		Currency:       "TRY",
		State:          dombooking.StateDraft,
		CreatedAt:      now,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		b.OrganizationID, b.ProductID, b.PartnerID,
		b.TravelDate, b.Pax, b.Amount, b.Currency, "TRY", b.CreatedAt,
	)
}

// BuildReconstructed returns an entity in an arbitrary lifecycle state, the
// way a repository would hydrate it.
func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	consumed := b.State == dombooking.StateBooked
	return dombooking.ReconstructBooking(
		uuid.New(), b.OrganizationID, b.ProductID, b.PartnerID,
		b.TravelDate, b.Pax, b.State, b.Amount, b.Currency, 0,
		consumed, false, nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProductID:  b.ProductID,
		PartnerID:  b.PartnerID,
		TravelDate: b.TravelDate,
		Pax:        b.Pax,
		Amount:     b.Amount,
		Currency:   b.Currency,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:             uuid.New(),
		OrganizationID: b.OrganizationID,
		ProductID:      b.ProductID,
		TravelDate:     b.TravelDate,
		Pax:            b.Pax,
		State:          b.State.String(),
		Amount:         b.Amount,
		Currency:       b.Currency,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithOrganizationID(id uuid.UUID) *BookingBuilder {
	b.OrganizationID = id
	return b
}

func (b *BookingBuilder) WithProductID(id uuid.UUID) *BookingBuilder {
	b.ProductID = id
	return b
}

func (b *BookingBuilder) WithPartnerID(id uuid.UUID) *BookingBuilder {
	b.PartnerID = &id
	return b
}

func (b *BookingBuilder) WithPax(pax int32) *BookingBuilder {
	b.Pax = pax
	return b
}

func (b *BookingBuilder) WithAmount(amount decimal.Decimal) *BookingBuilder {
	b.Amount = amount
	return b
}

func (b *BookingBuilder) WithCurrency(currency string) *BookingBuilder {
	b.Currency = currency
	return b
}

func (b *BookingBuilder) WithState(state dombooking.State) *BookingBuilder {
	b.State = state
	return b
}

func (b *BookingBuilder) WithTravelDate(date time.Time) *BookingBuilder {
	b.TravelDate = date
	return b
}
