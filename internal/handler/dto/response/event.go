package response

import (
	"time"

	"github.com/google/uuid"

	"tripcore/internal/usecase/queries"
)

type EventResponse struct {
	ID        uuid.UUID      `json:"id"`
	EntityID  uuid.UUID      `json:"entityId"`
	EventType string         `json:"eventType"`
	Actor     string         `json:"actor"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EventPageResponse carries the cursor for the next page: the id of the last
// event on this page, or empty when the page was not full.
type EventPageResponse struct {
	Events     []*EventResponse `json:"events"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

type AuditLogResponse struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Before    map[string]any `json:"before,omitempty"`
	After     map[string]any `json:"after,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type AuditLogPageResponse struct {
	Entries    []*AuditLogResponse `json:"entries"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

func FromEventView(rm *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:        rm.ID,
		EntityID:  rm.EntityID,
		EventType: rm.EventType,
		Actor:     rm.Actor,
		Meta:      rm.Meta,
		CreatedAt: rm.CreatedAt,
	}
}

func FromEventPage(views []*queries.EventView, limit int) *EventPageResponse {
	out := &EventPageResponse{Events: make([]*EventResponse, 0, len(views))}
	for _, v := range views {
		out.Events = append(out.Events, FromEventView(v))
	}
	if len(views) == limit && limit > 0 {
		out.NextCursor = views[len(views)-1].ID.String()
	}
	return out
}

func FromAuditLogView(rm *queries.AuditLogView) *AuditLogResponse {
	return &AuditLogResponse{
		ID:        rm.ID,
		Action:    rm.Action,
		Actor:     rm.Actor,
		Before:    rm.Before,
		After:     rm.After,
		CreatedAt: rm.CreatedAt,
	}
}

func FromAuditLogPage(views []*queries.AuditLogView, limit int) *AuditLogPageResponse {
	out := &AuditLogPageResponse{Entries: make([]*AuditLogResponse, 0, len(views))}
	for _, v := range views {
		out.Entries = append(out.Entries, FromAuditLogView(v))
	}
	if len(views) == limit && limit > 0 {
		out.NextCursor = views[len(views)-1].ID.String()
	}
	return out
}
