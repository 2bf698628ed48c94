package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "tripcore/internal/handler/dto/response"
	"tripcore/internal/handler/httperr"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/usecase/queries"
)

type EventHandler struct {
	eventQueries queries.EventQueries
	auditQueries queries.AuditQueries
}

func NewEventHandler(eventQueries queries.EventQueries, auditQueries queries.AuditQueries) *EventHandler {
	return &EventHandler{
		eventQueries: eventQueries,
		auditQueries: auditQueries,
	}
}

// @Summary Booking event timeline
// @Description Lifecycle events for one booking, oldest first
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.EventResponse
// @Router /bookings/{id}/events [get]
func (h *EventHandler) ListBookingEvents(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid booking ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	events, err := h.eventQueries.ListForBooking(c.Request.Context(), organizationID, bookingID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	out := make([]*resdto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, resdto.FromEventView(e))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Browse organization events
// @Description Org-wide event stream, newest first, cursor-paginated
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param cursor query string false "ID of the last event from the previous page"
// @Success 200 {object} resdto.EventPageResponse
// @Failure 400 {object} httperr.Response
// @Router /events [get]
func (h *EventHandler) BrowseEvents(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	cursor := c.Query("cursor")

	events, err := h.eventQueries.BrowseOrganization(c.Request.Context(), organizationID, limit, cursor)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid cursor"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventPage(events, int(queries.ValidateLimit(limit))))
}

// @Summary Browse audit log
// @Description Org-wide audit trail, newest first, cursor-paginated
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param cursor query string false "ID of the last entry from the previous page"
// @Success 200 {object} resdto.AuditLogPageResponse
// @Failure 400 {object} httperr.Response
// @Router /audit-logs [get]
func (h *EventHandler) BrowseAuditLog(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	cursor := c.Query("cursor")

	entries, err := h.auditQueries.Browse(c.Request.Context(), organizationID, limit, cursor)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid cursor"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuditLogPage(entries, int(queries.ValidateLimit(limit))))
}
