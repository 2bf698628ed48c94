package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripcore/internal/infra"
	"tripcore/internal/infra/db"
	"tripcore/internal/usecase/queries"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{db: pool}
}

// ListByEntity is the per-booking timeline: ascending, append order.
func (r *EventReadStore) ListByEntity(ctx context.Context, organizationID, entityID uuid.UUID, limit int32) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, organization_id, entity_id, event_type, actor, meta, created_at
		 FROM booking_events
		 WHERE organization_id = $1 AND entity_id = $2
		 ORDER BY created_at ASC, id ASC
		 LIMIT $3`,
		organizationID, entityID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entity events", err)
	}
	return scanEvents(rows)
}

// ListByOrganization is the audit browse direction: newest first. With a
// before bound, only rows strictly older are returned so no event is
// delivered twice across pages.
func (r *EventReadStore) ListByOrganization(ctx context.Context, organizationID uuid.UUID, limit int32, before *time.Time) ([]*queries.EventView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if before != nil {
		rows, err = r.db.Query(ctx,
			`SELECT id, organization_id, entity_id, event_type, actor, meta, created_at
			 FROM booking_events
			 WHERE organization_id = $1 AND created_at < $2
			 ORDER BY created_at DESC, id DESC
			 LIMIT $3`,
			organizationID, *before, limit,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, organization_id, entity_id, event_type, actor, meta, created_at
			 FROM booking_events
			 WHERE organization_id = $1
			 ORDER BY created_at DESC, id DESC
			 LIMIT $2`,
			organizationID, limit,
		)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list organization events", err)
	}
	return scanEvents(rows)
}

func (r *EventReadStore) ResolveCursor(ctx context.Context, organizationID, eventID uuid.UUID) (time.Time, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx,
		`SELECT created_at FROM booking_events WHERE organization_id = $1 AND id = $2`,
		organizationID, eventID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, infra.WrapRepoErr("cursor event not found", err, infra.KindNotFound)
		}
		return time.Time{}, infra.WrapRepoErr("failed to resolve event cursor", err)
	}
	return createdAt, nil
}

func scanEvents(rows pgx.Rows) ([]*queries.EventView, error) {
	defer rows.Close()

	var events []*queries.EventView
	for rows.Next() {
		var v queries.EventView
		if err := rows.Scan(&v.ID, &v.OrganizationID, &v.EntityID, &v.EventType, &v.Actor, &v.Meta, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		events = append(events, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}
	return events, nil
}
