package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/partner"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
)

type PartnerRepository struct{}

func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{}
}

func (r *PartnerRepository) Create(ctx context.Context, tx db.DBTX, p *partner.Partner) error {
	var percentText *string
	if p.DefaultCommissionPercent != nil {
		s := p.DefaultCommissionPercent.String()
		percentText = &s
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO partners (id, organization_id, name, default_commission_percent, api_key_hash, created_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6)`,
		p.ID, p.OrganizationID, p.Name, percentText, p.APIKeyHash, p.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create partner", err, kindFromPgError(err))
	}
	return nil
}

func (r *PartnerRepository) UpsertProductRate(ctx context.Context, tx db.DBTX, organizationID, partnerID, productID uuid.UUID, rate commission.Rate) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO partner_product_rates (organization_id, partner_id, product_id, commission_type, commission_value)
		 VALUES ($1, $2, $3, $4, $5::numeric)
		 ON CONFLICT (organization_id, partner_id, product_id) DO UPDATE
		 SET commission_type = EXCLUDED.commission_type,
		     commission_value = EXCLUDED.commission_value`,
		organizationID, partnerID, productID, string(rate.Type), rate.Value.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert partner product rate", err, kindFromPgError(err))
	}
	return nil
}

// FindProductRate returns nil without error when no explicit rate exists;
// commission resolution treats missing configuration as "default to zero",
// never as a failure.
func (r *PartnerRepository) FindProductRate(ctx context.Context, tx db.DBTX, organizationID, partnerID, productID uuid.UUID) (*commission.Rate, error) {
	var (
		typeText  string
		valueText string
	)
	err := tx.QueryRow(ctx,
		`SELECT commission_type, commission_value::text
		 FROM partner_product_rates
		 WHERE organization_id = $1 AND partner_id = $2 AND product_id = $3`,
		organizationID, partnerID, productID,
	).Scan(&typeText, &valueText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find partner product rate", err)
	}
	value, err := decimal.NewFromString(valueText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid commission value", err)
	}
	return &commission.Rate{Type: commission.Type(typeText), Value: value}, nil
}

// FindDefaultPercent returns nil when the partner is unknown or has no
// default configured, for the same reason as FindProductRate.
func (r *PartnerRepository) FindDefaultPercent(ctx context.Context, tx db.DBTX, organizationID, partnerID uuid.UUID) (*decimal.Decimal, error) {
	var percentText *string
	err := tx.QueryRow(ctx,
		`SELECT default_commission_percent::text
		 FROM partners
		 WHERE organization_id = $1 AND id = $2`,
		organizationID, partnerID,
	).Scan(&percentText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find partner", err)
	}
	if percentText == nil {
		return nil, nil
	}
	percent, err := decimal.NewFromString(*percentText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid default commission percent", err)
	}
	return &percent, nil
}
