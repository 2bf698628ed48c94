package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripcore/internal/domain/booking"
	reqdto "tripcore/internal/handler/dto/request"
	resdto "tripcore/internal/handler/dto/response"
	"tripcore/internal/handler/httperr"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/usecase/commands"
	"tripcore/internal/usecase/queries"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create draft booking
// @Description Create a new booking in draft state
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateDraft(c.Request.Context(), organizationID, middleware.GetActor(c), req)
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Transition booking state
// @Description Move a booking along draft→quoted→booked→cancel_requested
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target state"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/transition [post]
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
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

	var req reqdto.TransitionBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	target := booking.State(req.Target)
	if !target.IsValid() {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Unknown target state"})
		return
	}

	view, err := h.bookingCommands.Transition(c.Request.Context(), organizationID, bookingID, middleware.GetActor(c), target)
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Amend booking
// @Description Replace the gross amount and bump the amendment sequence
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AmendBookingRequest true "Amendment"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/amend [post]
func (h *BookingHandler) AmendBooking(c *gin.Context) {
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

	var req reqdto.AmendBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Amend(c.Request.Context(), organizationID, bookingID, middleware.GetActor(c), req)
	if err != nil {
		h.handleCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
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

	view, err := h.bookingQueries.GetByID(c.Request.Context(), organizationID, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, err := h.bookingQueries.List(c.Request.Context(), organizationID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Credit exposure summary
// @Description Credit limit and total booked exposure for the organization
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExposureSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /exposure [get]
func (h *BookingHandler) GetExposure(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	summary, err := h.bookingQueries.ExposureSummary(c.Request.Context(), organizationID)
	if err != nil {
		if errors.Is(err, queries.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExposureSummaryView(summary))
}

func (h *BookingHandler) handleCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, httperr.Response{Code: httperr.CodeNotFound, Error: "Booking not found"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, httperr.Response{Code: httperr.CodeValidationError, Error: "Validation failed"})
	case errors.Is(err, commands.ErrInvalidStateTransition):
		c.JSON(http.StatusUnprocessableEntity, httperr.Response{Code: httperr.CodeInvalidStateTransition, Error: "Invalid state transition"})
	case errors.Is(err, commands.ErrAmendNotAllowed):
		c.JSON(http.StatusConflict, httperr.Response{Code: httperr.CodeConflict, Error: "Booking can no longer be amended"})
	case errors.Is(err, commands.ErrSoldOut):
		c.JSON(http.StatusConflict, httperr.Response{Code: httperr.CodeSoldOut, Error: "Insufficient inventory for travel date"})
	case errors.Is(err, commands.ErrSupplierRejected):
		c.JSON(http.StatusUnprocessableEntity, httperr.Response{Code: httperr.CodeSupplierRejected, Error: "Supplier rejected the booking"})
	case errors.Is(err, commands.ErrSupplierUnavailable):
		c.JSON(http.StatusBadGateway, httperr.Response{Code: httperr.CodeSupplierUnavailable, Error: "Supplier unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, httperr.Response{Code: httperr.CodeInternal, Error: "Internal server error"})
	}
}
