package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tripcore/internal/usecase/commands"
)

// PartnerCreatedResponse is the only place the plain API key ever appears.
type PartnerCreatedResponse struct {
	ID                       uuid.UUID        `json:"id"`
	Name                     string           `json:"name"`
	DefaultCommissionPercent *decimal.Decimal `json:"defaultCommissionPercent,omitempty"`
	APIKey                   string           `json:"apiKey"`
	CreatedAt                time.Time        `json:"createdAt"`
}

func FromCreatePartnerResult(result *commands.CreatePartnerResult) *PartnerCreatedResponse {
	return &PartnerCreatedResponse{
		ID:                       result.Partner.ID,
		Name:                     result.Partner.Name,
		DefaultCommissionPercent: result.Partner.DefaultCommissionPercent,
		APIKey:                   result.APIKey,
		CreatedAt:                result.Partner.CreatedAt,
	}
}
