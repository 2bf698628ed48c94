package partner

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName      = errors.New("partner name is required")
	ErrInvalidPercent = errors.New("default commission percent must be between 0 and 100")
)

// Partner is a B2B sales channel. Its commission configuration feeds the
// settlement calculation; its API key hash is stored for the partner-facing
// gateway, which lives outside this service.
type Partner struct {
	ID                       uuid.UUID
	OrganizationID           uuid.UUID
	Name                     string
	DefaultCommissionPercent *decimal.Decimal
	APIKeyHash               string
	CreatedAt                time.Time
}

func NewPartner(organizationID uuid.UUID, name string, defaultCommissionPercent *decimal.Decimal, apiKeyHash string, now time.Time) (*Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if defaultCommissionPercent != nil {
		p := *defaultCommissionPercent
		if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
			return nil, ErrInvalidPercent
		}
	}
	return &Partner{
		ID:                       uuid.New(),
		OrganizationID:           organizationID,
		Name:                     name,
		DefaultCommissionPercent: defaultCommissionPercent,
		APIKeyHash:               apiKeyHash,
		CreatedAt:                now,
	}, nil
}
