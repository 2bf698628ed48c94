package response

import (
	"time"

	"github.com/google/uuid"

	"tripcore/internal/usecase/queries"
)

type InventoryDayResponse struct {
	ProductID         uuid.UUID `json:"productId"`
	Date              time.Time `json:"date"`
	CapacityTotal     int32     `json:"capacityTotal"`
	CapacityAvailable int32     `json:"capacityAvailable"`
	Closed            bool      `json:"closed"`
	MinStay           int32     `json:"minStay"`
	MaxStay           int32     `json:"maxStay"`
}

func FromInventoryDayView(rm *queries.InventoryDayView) *InventoryDayResponse {
	return &InventoryDayResponse{
		ProductID:         rm.ProductID,
		Date:              rm.Date,
		CapacityTotal:     rm.CapacityTotal,
		CapacityAvailable: rm.CapacityAvailable,
		Closed:            rm.Closed,
		MinStay:           rm.MinStay,
		MaxStay:           rm.MaxStay,
	}
}
