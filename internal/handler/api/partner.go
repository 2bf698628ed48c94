package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tripcore/internal/handler/dto/request"
	resdto "tripcore/internal/handler/dto/response"
	"tripcore/internal/handler/httperr"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/usecase/commands"
)

type PartnerHandler struct {
	partnerCommands commands.PartnerCommands
}

func NewPartnerHandler(partnerCommands commands.PartnerCommands) *PartnerHandler {
	return &PartnerHandler{partnerCommands: partnerCommands}
}

// @Summary Create partner
// @Description Register a B2B sales channel; the API key is returned exactly once
// @Tags partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePartnerRequest true "Partner"
// @Success 201 {object} resdto.PartnerCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /partners [post]
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	var req reqdto.CreatePartnerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	result, err := h.partnerCommands.CreatePartner(c.Request.Context(), organizationID, middleware.GetActor(c), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Validation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatePartnerResult(result))
}

// @Summary Set partner product rate
// @Description Upsert the commission rate for one partner/product pair
// @Tags partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param productID path string true "Product ID"
// @Param request body reqdto.SetProductRateRequest true "Rate"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /partners/{id}/rates/{productID} [put]
func (h *PartnerHandler) SetProductRate(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid partner ID"})
		return
	}
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid product ID"})
		return
	}

	var req reqdto.SetProductRateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	err = h.partnerCommands.SetProductRate(c.Request.Context(), organizationID, partnerID, productID, middleware.GetActor(c), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRateConfig):
			c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid commission rate"})
		case errors.Is(err, commands.ErrPartnerNotFound):
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Partner not found"})
		default:
			c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
