package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tripcore/internal/domain/commission"
	"tripcore/internal/domain/settlement"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
)

type SettlementRepository struct {
	db db.DBTX
}

func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{db: pool}
}

// CreateIfAbsent inserts the settlement unless one already exists for the
// booking. The UNIQUE constraint on booking_id makes this safe under
// concurrent calls; the loser of the race gets the winner's record back.
func (r *SettlementRepository) CreateIfAbsent(ctx context.Context, tx db.DBTX, s *settlement.Settlement) (*settlement.Settlement, bool, error) {
	tag, err := tx.Exec(ctx,
		`INSERT INTO settlements (
			id, organization_id, booking_id,
			gross_amount, commission_amount, net_amount,
			commission_type, commission_value, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7, $8::numeric, $9, $10, $11)
		ON CONFLICT (booking_id) DO NOTHING`,
		s.ID, s.OrganizationID, s.BookingID,
		s.GrossAmount.String(), s.CommissionAmount.String(), s.NetAmount.String(),
		string(s.CommissionType), s.CommissionValue.String(), string(s.Status),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to create settlement", err, kindFromPgError(err))
	}
	if tag.RowsAffected() == 1 {
		return s, true, nil
	}

	existing, err := r.FindByBookingID(ctx, tx, s.OrganizationID, s.BookingID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *SettlementRepository) FindByBookingID(ctx context.Context, tx db.DBTX, organizationID, bookingID uuid.UUID) (*settlement.Settlement, error) {
	row := tx.QueryRow(ctx,
		`SELECT id, organization_id, booking_id,
		        gross_amount::text, commission_amount::text, net_amount::text,
		        commission_type, commission_value::text, status, created_at, updated_at
		 FROM settlements
		 WHERE organization_id = $1 AND booking_id = $2`,
		organizationID, bookingID,
	)
	s, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("settlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find settlement", err)
	}
	return s, nil
}

// MarkSettled is idempotent: settling an already settled record is a no-op
// that returns the current row.
func (r *SettlementRepository) MarkSettled(ctx context.Context, tx db.DBTX, organizationID, settlementID uuid.UUID, now time.Time) (*settlement.Settlement, error) {
	row := tx.QueryRow(ctx,
		`UPDATE settlements
		 SET status = $3,
		     updated_at = CASE WHEN status = $3 THEN updated_at ELSE $4 END
		 WHERE organization_id = $1 AND id = $2
		 RETURNING id, organization_id, booking_id,
		           gross_amount::text, commission_amount::text, net_amount::text,
		           commission_type, commission_value::text, status, created_at, updated_at`,
		organizationID, settlementID, string(settlement.StatusSettled), now,
	)
	s, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("settlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to mark settlement settled", err)
	}
	return s, nil
}

// FindBookedWithoutSettlement feeds the background reconciler. Results are
// processed at-least-once; settlement creation stays idempotent regardless.
func (r *SettlementRepository) FindBookedWithoutSettlement(ctx context.Context, limit int32) ([]settlement.BookingRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.organization_id
		 FROM bookings b
		 LEFT JOIN settlements s ON s.booking_id = b.id
		 WHERE b.state = 'booked' AND s.id IS NULL
		 ORDER BY b.updated_at
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unsettled bookings", err)
	}
	defer rows.Close()

	var refs []settlement.BookingRef
	for rows.Next() {
		var ref settlement.BookingRef
		if err := rows.Scan(&ref.BookingID, &ref.OrganizationID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unsettled booking", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unsettled bookings", err)
	}
	return refs, nil
}

func scanSettlement(row pgx.Row) (*settlement.Settlement, error) {
	var (
		id, organizationID, bookingID uuid.UUID
		s                             texts
		status, commissionType        string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(
		&id, &organizationID, &bookingID,
		&s.gross, &s.comm, &s.net,
		&commissionType, &s.value, &status, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	gross, err := decimal.NewFromString(s.gross)
	if err != nil {
		return nil, err
	}
	comm, err := decimal.NewFromString(s.comm)
	if err != nil {
		return nil, err
	}
	net, err := decimal.NewFromString(s.net)
	if err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(s.value)
	if err != nil {
		return nil, err
	}
	return &settlement.Settlement{
		ID:               id,
		OrganizationID:   organizationID,
		BookingID:        bookingID,
		GrossAmount:      gross,
		CommissionAmount: comm,
		NetAmount:        net,
		CommissionType:   commission.Type(commissionType),
		CommissionValue:  value,
		Status:           settlement.Status(status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

type texts struct {
	gross, comm, net, value string
}
