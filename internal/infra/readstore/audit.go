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

type AuditReadStore struct {
	db db.DBTX
}

func NewAuditReadStore(pool *pgxpool.Pool) *AuditReadStore {
	return &AuditReadStore{db: pool}
}

func (r *AuditReadStore) Browse(ctx context.Context, organizationID uuid.UUID, limit int32, before *time.Time) ([]*queries.AuditLogView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if before != nil {
		rows, err = r.db.Query(ctx,
			`SELECT id, organization_id, action, actor, before, after, created_at
			 FROM audit_logs
			 WHERE organization_id = $1 AND created_at < $2
			 ORDER BY created_at DESC, id DESC
			 LIMIT $3`,
			organizationID, *before, limit,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, organization_id, action, actor, before, after, created_at
			 FROM audit_logs
			 WHERE organization_id = $1
			 ORDER BY created_at DESC, id DESC
			 LIMIT $2`,
			organizationID, limit,
		)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to browse audit log", err)
	}
	defer rows.Close()

	var entries []*queries.AuditLogView
	for rows.Next() {
		var v queries.AuditLogView
		if err := rows.Scan(&v.ID, &v.OrganizationID, &v.Action, &v.Actor, &v.Before, &v.After, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit entry", err)
		}
		entries = append(entries, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit entries", err)
	}
	return entries, nil
}

func (r *AuditReadStore) ResolveCursor(ctx context.Context, organizationID, entryID uuid.UUID) (time.Time, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx,
		`SELECT created_at FROM audit_logs WHERE organization_id = $1 AND id = $2`,
		organizationID, entryID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, infra.WrapRepoErr("cursor entry not found", err, infra.KindNotFound)
		}
		return time.Time{}, infra.WrapRepoErr("failed to resolve audit cursor", err)
	}
	return createdAt, nil
}
