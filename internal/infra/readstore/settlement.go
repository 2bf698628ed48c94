package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/usecase/queries"
)

type SettlementReadStore struct {
	db db.DBTX
}

func NewSettlementReadStore(pool *pgxpool.Pool) *SettlementReadStore {
	return &SettlementReadStore{db: pool}
}

func (r *SettlementReadStore) FindByBookingID(ctx context.Context, organizationID, bookingID uuid.UUID) (*queries.SettlementView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, booking_id,
		        gross_amount::text, commission_amount::text, net_amount::text,
		        commission_type, commission_value::text, status, created_at, updated_at
		 FROM settlements
		 WHERE organization_id = $1 AND booking_id = $2`,
		organizationID, bookingID,
	)

	var (
		v                                  queries.SettlementView
		grossText, commText, netText, valText string
	)
	err := row.Scan(
		&v.ID, &v.BookingID,
		&grossText, &commText, &netText,
		&v.CommissionType, &valText, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("settlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find settlement", err)
	}

	if v.GrossAmount, err = decimal.NewFromString(grossText); err != nil {
		return nil, infra.WrapRepoErr("invalid gross amount", err)
	}
	if v.CommissionAmount, err = decimal.NewFromString(commText); err != nil {
		return nil, infra.WrapRepoErr("invalid commission amount", err)
	}
	if v.NetAmount, err = decimal.NewFromString(netText); err != nil {
		return nil, infra.WrapRepoErr("invalid net amount", err)
	}
	if v.CommissionValue, err = decimal.NewFromString(valText); err != nil {
		return nil, infra.WrapRepoErr("invalid commission value", err)
	}
	return &v, nil
}
