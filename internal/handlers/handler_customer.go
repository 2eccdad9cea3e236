package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paymentbank/pb_backend/internal/apperrors"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
	"github.com/paymentbank/pb_backend/internal/dto"
	"github.com/paymentbank/pb_backend/internal/middleware"
)

// customerHandler handles HTTP requests for customer profiles.
type customerHandler struct {
	enrichmentService portssvc.EnrichmentSvcFacade
}

func newCustomerHandler(es portssvc.EnrichmentSvcFacade) *customerHandler {
	return &customerHandler{enrichmentService: es}
}

// registerCustomerRoutes registers routes related to customer profiles.
func registerCustomerRoutes(r *gin.Engine, es portssvc.EnrichmentSvcFacade) {
	h := newCustomerHandler(es)

	r.GET("/customer/:customerID", h.getCustomerProfile)
}

// getCustomerProfile returns the customer with the aggregate balance and
// enriched accounts.
func (h *customerHandler) getCustomerProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, err := strconv.Atoi(c.Param("customerID"))
	if err != nil {
		logger.Warn("Invalid customer id", slog.String("customer_id", c.Param("customerID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	logger = logger.With(slog.Int("customer_id", customerID))
	logger.Info("Received request to get customer profile")

	profile, err := h.enrichmentService.CustomerProfile(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error getting customer profile", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Customer not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		default:
			logger.Error("Failed to get customer profile from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer profile"})
		}
		return
	}

	logger.Info("Customer profile retrieved", slog.Int("account_count", len(profile.Accounts)))
	c.JSON(http.StatusOK, dto.ToEnrichedCustomerResponse(profile))
}
