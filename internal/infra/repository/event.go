package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tripcore/internal/domain/eventlog"
	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/pkg/clock"
	"tripcore/internal/pkg/config"
)

// EventRepository persists the append-only booking event stream. Appends are
// best-effort from the caller's perspective, so this layer works to fail as
// rarely as possible: transient errors are retried with a short backoff
// before the failure is reported.
type EventRepository struct {
	clock   clock.Clock
	retries int
	backoff time.Duration
}

func NewEventRepository(clk clock.Clock, cfg config.Config) *EventRepository {
	return &EventRepository{
		clock:   clk,
		retries: cfg.Booking.AppendRetries,
		backoff: cfg.Booking.AppendRetryBackoff,
	}
}

func (r *EventRepository) Append(ctx context.Context, tx db.DBTX, e *eventlog.Entry) (uuid.UUID, error) {
	r.fillDefaults(e)

	err := r.withRetry(ctx, func() error {
		_, execErr := tx.Exec(ctx,
			`INSERT INTO booking_events (id, organization_id, entity_id, event_type, actor, meta, correlation_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.OrganizationID, e.EntityID, e.EventType, e.Actor, e.Meta, e.CorrelationID, e.CreatedAt,
		)
		return execErr
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append event", err, kindFromPgError(err))
	}
	return e.ID, nil
}

// AppendIdempotent inserts keyed on (org, correlation, type, entity): the
// first write wins and a replay returns the already-stored event's id.
func (r *EventRepository) AppendIdempotent(ctx context.Context, tx db.DBTX, e *eventlog.Entry) (uuid.UUID, bool, error) {
	if e.CorrelationID == nil || *e.CorrelationID == "" {
		return uuid.Nil, false, infra.WrapRepoErr("correlation id required for idempotent append", nil, infra.KindConflict)
	}
	r.fillDefaults(e)

	var tagInserted bool
	err := r.withRetry(ctx, func() error {
		tag, execErr := tx.Exec(ctx,
			`INSERT INTO booking_events (id, organization_id, entity_id, event_type, actor, meta, correlation_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (organization_id, correlation_id, event_type, entity_id)
			   WHERE correlation_id IS NOT NULL
			 DO NOTHING`,
			e.ID, e.OrganizationID, e.EntityID, e.EventType, e.Actor, e.Meta, e.CorrelationID, e.CreatedAt,
		)
		if execErr != nil {
			return execErr
		}
		tagInserted = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to append event idempotently", err, kindFromPgError(err))
	}
	if tagInserted {
		return e.ID, true, nil
	}

	var existingID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM booking_events
		 WHERE organization_id = $1 AND correlation_id = $2 AND event_type = $3 AND entity_id = $4`,
		e.OrganizationID, e.CorrelationID, e.EventType, e.EntityID,
	).Scan(&existingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, infra.WrapRepoErr("idempotent event vanished", err, infra.KindNotFound)
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to load existing event", err)
	}
	return existingID, false, nil
}

func (r *EventRepository) fillDefaults(e *eventlog.Entry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.clock.Now()
	}
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
}

func (r *EventRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.backoff * time.Duration(attempt)):
			}
		}
		err = fn()
		if err == nil {
			return nil
		}
		// Constraint violations will not heal on retry.
		if kindFromPgError(err) != infra.KindDBFailure {
			return err
		}
	}
	return err
}
