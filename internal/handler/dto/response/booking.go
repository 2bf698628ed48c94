package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/usecase/queries"
)

type BookingResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"productId"`
	TravelDate        time.Time       `json:"travelDate"`
	Pax               int32           `json:"pax"`
	State             string          `json:"state"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	AmendSeq          int32           `json:"amendSeq"`
	InventoryConsumed bool            `json:"inventoryConsumed"`
	InventoryReleased bool            `json:"inventoryReleased"`
	SupplierBookingID *string         `json:"supplierBookingId,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"productId"`
	TravelDate time.Time       `json:"travelDate"`
	State      string          `json:"state"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type ExposureSummaryResponse struct {
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	TotalExposure   decimal.Decimal `json:"totalExposure"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	BookedCount     int64           `json:"bookedCount"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                rm.ID,
		ProductID:         rm.ProductID,
		TravelDate:        rm.TravelDate,
		Pax:               rm.Pax,
		State:             rm.State,
		Amount:            rm.Amount,
		Currency:          rm.Currency,
		AmendSeq:          rm.AmendSeq,
		InventoryConsumed: rm.InventoryConsumed,
		InventoryReleased: rm.InventoryReleased,
		SupplierBookingID: rm.SupplierBookingID,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         rm.ID,
		ProductID:  rm.ProductID,
		TravelDate: rm.TravelDate,
		State:      rm.State,
		Amount:     rm.Amount,
		Currency:   rm.Currency,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromBookingListItem(item))
	}
	return out
}

func FromExposureSummaryView(rm *queries.ExposureSummaryView) *ExposureSummaryResponse {
	return &ExposureSummaryResponse{
		CreditLimit:     rm.CreditLimit,
		TotalExposure:   rm.TotalExposure,
		AvailableCredit: rm.AvailableCredit,
		BookedCount:     rm.BookedCount,
	}
}
