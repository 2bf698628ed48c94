package request

import (
	"time"

	"github.com/google/uuid"

	"tripcore/internal/domain/inventory"
)

type SetCapacityRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	CapacityTotal int32     `json:"capacity_total" binding:"min=0"`
	Closed        bool      `json:"closed"`
	MinStay       int32     `json:"min_stay" binding:"min=0"`
	MaxStay       int32     `json:"max_stay" binding:"min=0"`
}

func (r SetCapacityRequest) ToDomain(organizationID uuid.UUID) (*inventory.Day, error) {
	return inventory.NewDay(
		organizationID,
		r.ProductID,
		r.Date,
		r.CapacityTotal,
		r.Closed,
		r.MinStay,
		r.MaxStay,
	)
}
