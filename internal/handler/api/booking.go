package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/user"
	reqdto "hotel-loyalty-core/internal/handler/dto/request"
	resdto "hotel-loyalty-core/internal/handler/dto/response"
	"hotel-loyalty-core/internal/handler/middleware"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/commands"
	"hotel-loyalty-core/internal/usecase/queries"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	loyaltyQueries  queries.LoyaltyQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	loyaltyQueries queries.LoyaltyQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		loyaltyQueries:  loyaltyQueries,
	}
}

// @Summary Create booking
// @Description Create a PENDING booking, optionally redeeming points for a discount
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		CustomerID:   actor.ID,
		HotelID:      req.HotelID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Rooms:        req.RoomInputs(),
		RedeemPoints: req.RedeemPoints,
		Actor:        actor,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking with its status history and loyalty effects
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if actor.Role == user.RoleGuest && view.CustomerID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the caller's bookings; staff may pass customer_id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer ID (staff only)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	customerID := actor.ID
	if raw := c.Query("customer_id"); raw != "" {
		if actor.Role == user.RoleGuest {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
			return
		}
		customerID = parsed
	}

	items, err := h.bookingQueries.ListByCustomer(c.Request.Context(), customerID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Transition booking
// @Description Apply a lifecycle transition with its loyalty side effects
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionRequest true "Transition request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/transitions [post]
func (h *BookingHandler) Transition(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Transition(c.Request.Context(), commands.TransitionParams{
		BookingID: id,
		Target:    booking.Status(req.Target),
		Reason:    req.Reason,
		Actor:     actor,
		Options:   booking.TransitionOptions{OverrideCheckInDate: req.OverrideCheckInDate},
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Booking ledger entries
// @Description List the ledger entries one booking produced
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/ledger [get]
func (h *BookingHandler) Ledger(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if actor.Role == user.RoleGuest && view.CustomerID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	entries, err := h.loyaltyQueries.StatementForBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntryViews(entries))
}

func requestActor(c *gin.Context) (booking.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return booking.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return booking.Actor{}, false
	}
	return booking.Actor{ID: userID, Role: role}, true
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
	case errors.Is(err, errs.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, errs.ErrInventoryHoldLost):
		c.JSON(http.StatusConflict, gin.H{"error": "Inventory hold no longer valid"})
	case errors.Is(err, errs.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking was modified concurrently, retry the request"})
	case errors.Is(err, errs.ErrInsufficientBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient points balance"})
	case errors.Is(err, errs.ErrRedemptionNotEligible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Redemption not eligible"})
	case errors.Is(err, errs.ErrAccountDisabled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Loyalty account is disabled"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upstream service unavailable"})
	case errors.Is(err, errs.ErrOperationTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Operation timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
