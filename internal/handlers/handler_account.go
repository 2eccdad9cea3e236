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

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	enrichmentService portssvc.EnrichmentSvcFacade
	openingService    portssvc.AccountOpeningSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(es portssvc.EnrichmentSvcFacade, os portssvc.AccountOpeningSvcFacade) *accountHandler {
	return &accountHandler{
		enrichmentService: es,
		openingService:    os,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(r *gin.Engine, es portssvc.EnrichmentSvcFacade, os portssvc.AccountOpeningSvcFacade) {
	h := newAccountHandler(es, os)

	r.GET("/account", h.listAccounts)
	r.GET("/account/:customerID", h.getAccountsByCustomer)
	r.POST("/accountcreaterequest", h.openAccount)
}

// listAccounts returns every account with no enrichment.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list all accounts")

	accounts, err := h.enrichmentService.ListAllAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccountsByCustomer returns the customer's accounts enriched with their
// ledger history. An unreachable ledger is a 500, not a 404: absence of
// accounts is not an error, absence of a reachable ledger is.
func (h *accountHandler) getAccountsByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, err := strconv.Atoi(c.Param("customerID"))
	if err != nil {
		logger.Warn("Invalid customer id", slog.String("customer_id", c.Param("customerID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	logger = logger.With(slog.Int("customer_id", customerID))
	logger.Info("Received request to get accounts for customer")

	accounts, err := h.enrichmentService.AccountsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error getting accounts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No accounts found for customer")
			c.JSON(http.StatusNotFound, gin.H{"error": "No accounts found"})
		default:
			logger.Error("Failed to get enriched accounts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accounts"})
		}
		return
	}

	logger.Info("Accounts retrieved", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListEnrichedAccountResponse(accounts))
}

// openAccount runs the account opening saga. A ledger divergence is still a
// 200 for the account (it exists) but the response flags the missing ledger
// record instead of hiding it.
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int("customer_id", req.CustomerID))
	logger.Info("Received request to open account", slog.String("initial_credit", req.InitialCredit.String()))

	account, err := h.openingService.OpenAccount(c.Request.Context(), req.CustomerID, req.InitialCredit)
	if err != nil {
		var sagaErr *apperrors.SagaError
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error opening account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &sagaErr):
			logger.Warn("Account opened with ledger divergence", slog.Int("account_id", sagaErr.AccountID))
			c.JSON(http.StatusOK, dto.OpenAccountResponse{
				Account:        dto.ToAccountResponse(account),
				LedgerRecorded: false,
				Warning:        "account created but the opening transaction was not recorded in the ledger",
			})
		default:
			logger.Error("Failed to open account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open account"})
		}
		return
	}

	logger.Info("Account opened successfully", slog.Int("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.OpenAccountResponse{
		Account:        dto.ToAccountResponse(account),
		LedgerRecorded: true,
	})
}
