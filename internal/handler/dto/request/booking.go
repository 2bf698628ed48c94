package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/booking"
)

type CreateBookingRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	PartnerID  *uuid.UUID      `json:"partner_id,omitempty"`
	TravelDate time.Time       `json:"travel_date" binding:"required"`
	Pax        int32           `json:"pax" binding:"required,min=1"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency" binding:"required"`
}

func (r CreateBookingRequest) ToDomain(organizationID uuid.UUID, supportedCurrency string, now time.Time) (*booking.Booking, error) {
	return booking.NewBooking(
		organizationID,
		r.ProductID,
		r.PartnerID,
		r.TravelDate,
		r.Pax,
		r.Amount,
		r.Currency,
		supportedCurrency,
		now,
	)
}

type TransitionBookingRequest struct {
	Target string `json:"target" binding:"required"`
}

type AmendBookingRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
