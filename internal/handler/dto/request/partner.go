package request

import (
	"github.com/shopspring/decimal"
)

type CreatePartnerRequest struct {
	Name                     string           `json:"name" binding:"required"`
	DefaultCommissionPercent *decimal.Decimal `json:"default_commission_percent,omitempty"`
}

type SetProductRateRequest struct {
	CommissionType  string          `json:"commission_type" binding:"required"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}
