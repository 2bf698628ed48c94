package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                uuid.UUID       `json:"id"`
	OrganizationID    uuid.UUID       `json:"organization_id"`
	ProductID         uuid.UUID       `json:"product_id"`
	TravelDate        time.Time       `json:"travel_date"`
	Pax               int32           `json:"pax"`
	State             string          `json:"state"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	AmendSeq          int32           `json:"amend_seq"`
	InventoryConsumed bool            `json:"inventory_consumed"`
	InventoryReleased bool            `json:"inventory_released"`
	SupplierBookingID *string         `json:"supplier_booking_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	TravelDate time.Time       `json:"travel_date"`
	State      string          `json:"state"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}

type EventView struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID uuid.UUID      `json:"organization_id"`
	EntityID       uuid.UUID      `json:"entity_id"`
	EventType      string         `json:"event_type"`
	Actor          string         `json:"actor"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

type AuditLogView struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID uuid.UUID      `json:"organization_id"`
	Action         string         `json:"action"`
	Actor          string         `json:"actor"`
	Before         map[string]any `json:"before,omitempty"`
	After          map[string]any `json:"after,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

type SettlementView struct {
	ID               uuid.UUID       `json:"id"`
	BookingID        uuid.UUID       `json:"booking_id"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	CommissionType   string          `json:"commission_type"`
	CommissionValue  decimal.Decimal `json:"commission_value"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ExposureSummaryView is the org-wide credit picture over booked bookings.
type ExposureSummaryView struct {
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	TotalExposure   decimal.Decimal `json:"total_exposure"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	BookedCount     int64           `json:"booked_count"`
}

type InventoryDayView struct {
	ProductID         uuid.UUID `json:"product_id"`
	Date              time.Time `json:"date"`
	CapacityTotal     int32     `json:"capacity_total"`
	CapacityAvailable int32     `json:"capacity_available"`
	Closed            bool      `json:"closed"`
	MinStay           int32     `json:"min_stay"`
	MaxStay           int32     `json:"max_stay"`
}
