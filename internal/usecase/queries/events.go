package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripcore/internal/infra"
	"tripcore/internal/pkg/errs"
)

type EventReadStore interface {
	// ListByEntity returns a single entity's timeline, ascending by creation time.
	ListByEntity(ctx context.Context, organizationID, entityID uuid.UUID, limit int32) ([]*EventView, error)
	// ListByOrganization returns the org-wide stream, descending; when before
	// is set only rows strictly older than it are returned.
	ListByOrganization(ctx context.Context, organizationID uuid.UUID, limit int32, before *time.Time) ([]*EventView, error)
	// ResolveCursor returns the creation time of the given event.
	ResolveCursor(ctx context.Context, organizationID, eventID uuid.UUID) (time.Time, error)
}

type AuditReadStore interface {
	Browse(ctx context.Context, organizationID uuid.UUID, limit int32, before *time.Time) ([]*AuditLogView, error)
	ResolveCursor(ctx context.Context, organizationID, entryID uuid.UUID) (time.Time, error)
}

type EventQueries interface {
	ListForBooking(ctx context.Context, organizationID, bookingID uuid.UUID, limit int) ([]*EventView, error)
	BrowseOrganization(ctx context.Context, organizationID uuid.UUID, limit int, cursor string) ([]*EventView, error)
}

type AuditQueries interface {
	Browse(ctx context.Context, organizationID uuid.UUID, limit int, cursor string) ([]*AuditLogView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) ListForBooking(ctx context.Context, organizationID, bookingID uuid.UUID, limit int) ([]*EventView, error) {
	events, err := q.store.ListByEntity(ctx, organizationID, bookingID, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return events, nil
}

func (q *eventQueriesImpl) BrowseOrganization(ctx context.Context, organizationID uuid.UUID, limit int, cursor string) ([]*EventView, error) {
	before, err := resolveBefore(ctx, organizationID, cursor, q.store.ResolveCursor)
	if err != nil {
		return nil, err
	}
	events, err := q.store.ListByOrganization(ctx, organizationID, ValidateLimit(limit), before)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return events, nil
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) Browse(ctx context.Context, organizationID uuid.UUID, limit int, cursor string) ([]*AuditLogView, error) {
	before, err := resolveBefore(ctx, organizationID, cursor, q.store.ResolveCursor)
	if err != nil {
		return nil, err
	}
	entries, err := q.store.Browse(ctx, organizationID, ValidateLimit(limit), before)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return entries, nil
}

func resolveBefore(
	ctx context.Context,
	organizationID uuid.UUID,
	cursor string,
	resolve func(context.Context, uuid.UUID, uuid.UUID) (time.Time, error),
) (*time.Time, error) {
	id, err := ParseCursor(cursor)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, nil
	}
	ts, err := resolve(ctx, organizationID, *id)
	if err != nil {
		// An unknown cursor id is a client mistake, not a server failure.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCursor
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return &ts, nil
}
