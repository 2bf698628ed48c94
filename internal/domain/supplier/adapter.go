// Package supplier declares the capability the booking engine needs from
// third-party supplier integrations. The real HTTP adapters live outside
// this repository.
package supplier

import (
	"context"

	"tripcore/internal/domain/booking"
)

type Status string

const (
	StatusConfirmed    Status = "confirmed"
	StatusRejected     Status = "rejected"
	StatusPending      Status = "pending"
	StatusNotSupported Status = "not_supported"
)

type Confirmation struct {
	Status            Status
	SupplierBookingID string
}

// Adapter confirms a booking with the upstream supplier. A rejected or
// not_supported result is a hard stop requiring ops intervention, not a
// retryable error.
type Adapter interface {
	ConfirmBooking(ctx context.Context, b *booking.Booking) (Confirmation, error)
}
