package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/eventlog"
	"tripcore/internal/domain/partner"
	reqdto "tripcore/internal/handler/dto/request"
	"tripcore/internal/infra"
	"tripcore/internal/pkg/apikey"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/errs"
)

var (
	ErrPartnerNotFound   = errs.New("partner not found")
	ErrAPIKeyGeneration  = errs.New("api key generation failed")
	ErrInvalidRateConfig = errs.New("invalid commission rate configuration")
)

// CreatePartnerResult carries the plain API key exactly once; it is never
// stored or logged.
type CreatePartnerResult struct {
	Partner *partner.Partner
	APIKey  string
}

type PartnerCommands interface {
	CreatePartner(ctx context.Context, organizationID uuid.UUID, actor string, req reqdto.CreatePartnerRequest) (*CreatePartnerResult, error)
	SetProductRate(ctx context.Context, organizationID, partnerID, productID uuid.UUID, actor string, req reqdto.SetProductRateRequest) error
}

type partnerUseCaseImpl struct {
	partnerRepo PartnerRepository
	auditRepo   AuditRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewPartnerUseCase(
	partnerRepo PartnerRepository,
	auditRepo AuditRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) PartnerCommands {
	return &partnerUseCaseImpl{
		partnerRepo: partnerRepo,
		auditRepo:   auditRepo,
		db:          db,
		clock:       clock,
	}
}

func (u *partnerUseCaseImpl) CreatePartner(
	ctx context.Context,
	organizationID uuid.UUID,
	actor string,
	req reqdto.CreatePartnerRequest,
) (*CreatePartnerResult, error) {
	key, err := apikey.Generate()
	if err != nil {
		return nil, errs.Mark(err, ErrAPIKeyGeneration)
	}
	hash, err := apikey.Hash(key)
	if err != nil {
		return nil, errs.Mark(err, ErrAPIKeyGeneration)
	}

	p, err := partner.NewPartner(organizationID, req.Name, req.DefaultCommissionPercent, hash, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.partnerRepo.Create(ctx, u.db, p); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.appendAudit(ctx, organizationID, "partner.created", actor, map[string]any{
		"partner_id": p.ID,
		"name":       p.Name,
	})

	return &CreatePartnerResult{Partner: p, APIKey: key}, nil
}

func (u *partnerUseCaseImpl) SetProductRate(
	ctx context.Context,
	organizationID, partnerID, productID uuid.UUID,
	actor string,
	req reqdto.SetProductRateRequest,
) error {
	rate, err := validateRate(req)
	if err != nil {
		return err
	}

	if err := u.partnerRepo.UpsertProductRate(ctx, u.db, organizationID, partnerID, productID, rate); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrPartnerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.appendAudit(ctx, organizationID, "partner.rate_set", actor, map[string]any{
		"partner_id":       partnerID,
		"product_id":       productID,
		"commission_type":  string(rate.Type),
		"commission_value": rate.Value,
	})
	return nil
}

// validateRate rejects malformed new configuration at the edge. Legacy rows
// with unknown types are still tolerated at settlement time.
func validateRate(req reqdto.SetProductRateRequest) (commission.Rate, error) {
	typ := commission.Type(req.CommissionType)
	switch typ {
	case commission.TypePercent:
		if req.CommissionValue.IsNegative() || req.CommissionValue.GreaterThan(decimal.NewFromInt(100)) {
			return commission.Rate{}, ErrInvalidRateConfig
		}
	case commission.TypeFixed, commission.TypeFixedPerBooking:
		if req.CommissionValue.IsNegative() {
			return commission.Rate{}, ErrInvalidRateConfig
		}
	default:
		return commission.Rate{}, ErrInvalidRateConfig
	}
	return commission.Rate{Type: typ, Value: req.CommissionValue}, nil
}

func (u *partnerUseCaseImpl) appendAudit(ctx context.Context, organizationID uuid.UUID, action, actor string, after map[string]any) {
	if _, err := u.auditRepo.Append(ctx, u.db, &eventlog.AuditEntry{
		OrganizationID: organizationID,
		Action:         action,
		Actor:          actor,
		After:          after,
	}); err != nil {
		slog.Warn("failed to append partner audit entry", "action", action, "error", err)
	}
}
