package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "tripcore/internal/handler/dto/response"
	"tripcore/internal/handler/httperr"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/usecase/commands"
	"tripcore/internal/usecase/queries"
)

type SettlementHandler struct {
	settlementCommands commands.SettlementCommands
	settlementQueries  queries.SettlementQueries
}

func NewSettlementHandler(settlementCommands commands.SettlementCommands, settlementQueries queries.SettlementQueries) *SettlementHandler {
	return &SettlementHandler{
		settlementCommands: settlementCommands,
		settlementQueries:  settlementQueries,
	}
}

// @Summary Get settlement for booking
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/settlement [get]
func (h *SettlementHandler) GetForBooking(c *gin.Context) {
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

	view, err := h.settlementQueries.GetForBooking(c.Request.Context(), organizationID, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrSettlementNotFound) {
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Settlement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlementView(view))
}

// @Summary Mark settlement settled
// @Description Close an open settlement; settling twice is a no-op
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Settlement ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 404 {object} httperr.Response
// @Router /settlements/{id}/settle [post]
func (h *SettlementHandler) MarkSettled(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	settlementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid settlement ID"})
		return
	}

	s, err := h.settlementCommands.MarkSettled(c.Request.Context(), organizationID, settlementID, middleware.GetActor(c))
	if err != nil {
		if errors.Is(err, commands.ErrSettlementNotFound) {
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Settlement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlement(s))
}
