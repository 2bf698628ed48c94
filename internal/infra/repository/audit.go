package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripcore/internal/domain/eventlog"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/config"
)

// AuditRepository persists the org-wide audit stream. Same best-effort
// contract as booking events.
type AuditRepository struct {
	clock   clock.Clock
	retries int
	backoff time.Duration
}

func NewAuditRepository(clk clock.Clock, cfg config.Config) *AuditRepository {
	return &AuditRepository{
		clock:   clk,
		retries: cfg.Booking.AppendRetries,
		backoff: cfg.Booking.AppendRetryBackoff,
	}
}

func (r *AuditRepository) Append(ctx context.Context, tx db.DBTX, e *eventlog.AuditEntry) (uuid.UUID, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.clock.Now()
	}

	var err error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return uuid.Nil, ctx.Err()
			case <-time.After(r.backoff * time.Duration(attempt)):
			}
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO audit_logs (id, organization_id, action, actor, before, after, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.OrganizationID, e.Action, e.Actor, e.Before, e.After, e.CreatedAt,
		)
		if err == nil {
			return e.ID, nil
		}
		if kindFromPgError(err) != infra.KindDBFailure {
			break
		}
	}
	return uuid.Nil, infra.WrapRepoErr("failed to append audit entry", err, kindFromPgError(err))
}
