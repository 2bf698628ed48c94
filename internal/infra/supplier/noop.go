// Package supplier holds the in-repo supplier adapter implementations. Real
// supplier integrations are separate services; the pass-through adapter here
// confirms everything locally so single-tenant and dev deployments work
// without one.
package supplier

import (
	"context"

	"tripcore/internal/domain/booking"
	domsupplier "tripcore/internal/domain/supplier"
)

type PassthroughAdapter struct{}

func NewPassthroughAdapter() *PassthroughAdapter {
	return &PassthroughAdapter{}
}

func (a *PassthroughAdapter) ConfirmBooking(_ context.Context, b *booking.Booking) (domsupplier.Confirmation, error) {
	return domsupplier.Confirmation{
		Status:            domsupplier.StatusConfirmed,
		SupplierBookingID: "local-" + b.ID().String(),
	}, nil
}
