package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/settlement"
	"tripcore/internal/usecase/queries"
)

type SettlementResponse struct {
	ID               uuid.UUID       `json:"id"`
	BookingID        uuid.UUID       `json:"bookingId"`
	GrossAmount      decimal.Decimal `json:"grossAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	CommissionType   string          `json:"commissionType"`
	CommissionValue  decimal.Decimal `json:"commissionValue"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromSettlementView(rm *queries.SettlementView) *SettlementResponse {
	return &SettlementResponse{
		ID:               rm.ID,
		BookingID:        rm.BookingID,
		GrossAmount:      rm.GrossAmount,
		CommissionAmount: rm.CommissionAmount,
		NetAmount:        rm.NetAmount,
		CommissionType:   rm.CommissionType,
		CommissionValue:  rm.CommissionValue,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromSettlement(s *settlement.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:               s.ID,
		BookingID:        s.BookingID,
		GrossAmount:      s.GrossAmount,
		CommissionAmount: s.CommissionAmount,
		NetAmount:        s.NetAmount,
		CommissionType:   string(s.CommissionType),
		CommissionValue:  s.CommissionValue,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
