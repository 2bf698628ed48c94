// Package eventlog defines the append-only record streams: per-booking
// lifecycle events and the organization-wide audit trail. Entries are created
// once and never mutated or deleted.
package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only fact about an entity. CorrelationID, when set,
// makes the append idempotent on (organization, correlation, type, entity):
// re-delivery of the same logical event must not create a duplicate row.
type Entry struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	EntityID       uuid.UUID
	EventType      string
	Actor          string
	Meta           map[string]any
	CorrelationID  *string
	CreatedAt      time.Time
}

// AuditEntry records a privileged action with before/after snapshots. It is
// a separate stream from booking events and covers non-booking entities too.
type AuditEntry struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Action         string
	Actor          string
	Before         map[string]any
	After          map[string]any
	CreatedAt      time.Time
}
