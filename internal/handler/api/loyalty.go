package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "hotel-loyalty-core/internal/handler/dto/request"
	resdto "hotel-loyalty-core/internal/handler/dto/response"
	"hotel-loyalty-core/internal/handler/middleware"
	"hotel-loyalty-core/internal/usecase/commands"
	"hotel-loyalty-core/internal/usecase/queries"
)

type LoyaltyHandler struct {
	loyaltyCommands commands.LoyaltyCommands
	loyaltyQueries  queries.LoyaltyQueries
}

func NewLoyaltyHandler(loyaltyCommands commands.LoyaltyCommands, loyaltyQueries queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyCommands: loyaltyCommands,
		loyaltyQueries:  loyaltyQueries,
	}
}

// @Summary Account summary
// @Description Get the caller's loyalty account with tier progress
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AccountSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /loyalty/account [get]
func (h *LoyaltyHandler) MyAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	h.writeAccount(c, userID)
}

// @Summary Points statement
// @Description Get the caller's ledger entries in insertion order
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LedgerEntryResponse
// @Router /loyalty/ledger [get]
func (h *LoyaltyHandler) MyStatement(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	h.writeStatement(c, userID)
}

// @Summary Customer account summary
// @Description Get any customer's loyalty account (staff only)
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.AccountSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loyalty/customers/{id}/account [get]
func (h *LoyaltyHandler) CustomerAccount(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}
	h.writeAccount(c, customerID)
}

// @Summary Customer points statement
// @Description Get any customer's ledger entries (staff only)
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Failure 400 {object} map[string]string
// @Router /loyalty/customers/{id}/ledger [get]
func (h *LoyaltyHandler) CustomerStatement(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}
	h.writeStatement(c, customerID)
}

// @Summary Adjust points
// @Description Append a manual adjustment entry to a customer's ledger (admin only)
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdjustPointsRequest true "Adjustment request"
// @Success 201 {object} resdto.LedgerEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /loyalty/adjustments [post]
func (h *LoyaltyHandler) Adjust(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.loyaltyCommands.Adjust(c.Request.Context(), commands.AdjustPointsParams{
		CustomerID: req.CustomerID,
		Points:     req.Points,
		Reason:     req.Reason,
		ActorID:    actorID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLedgerEntryView(entry))
}

func (h *LoyaltyHandler) writeAccount(c *gin.Context, customerID uuid.UUID) {
	view, err := h.loyaltyQueries.AccountSummary(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountSummaryView(view))
}

func (h *LoyaltyHandler) writeStatement(c *gin.Context, customerID uuid.UUID) {
	entries, err := h.loyaltyQueries.Statement(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntryViews(entries))
}
