package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tripcore/internal/handler/dto/request"
	resdto "tripcore/internal/handler/dto/response"
	"tripcore/internal/handler/httperr"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/usecase/commands"
	"tripcore/internal/usecase/queries"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Set day capacity
// @Description Upsert the capacity record for one product/date; last write wins
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetCapacityRequest true "Capacity"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /inventory [put]
func (h *InventoryHandler) SetCapacity(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	var req reqdto.SetCapacityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	if err := h.inventoryCommands.SetCapacity(c.Request.Context(), organizationID, middleware.GetActor(c), req); err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Validation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get day capacity
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param product_id query string true "Product ID"
// @Param date query string true "Date (RFC3339 or 2006-01-02)"
// @Success 200 {object} resdto.InventoryDayResponse
// @Failure 404 {object} httperr.Response
// @Router /inventory [get]
func (h *InventoryHandler) GetDay(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid product ID"})
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid date"})
		return
	}

	view, err := h.inventoryQueries.GetDay(c.Request.Context(), organizationID, productID, date)
	if err != nil {
		if errors.Is(err, queries.ErrInventoryDayNotFound) {
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "No inventory for that date"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryDayView(view))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
