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

// transactionHandler serves the ledger service's HTTP surface.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers the ledger service routes.
func registerTransactionRoutes(r *gin.Engine, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	r.GET("/transaction", h.listTransactions)
	r.GET("/transaction/:accountID", h.getTransactionsByAccount)
	r.POST("/transaction", h.createTransaction)
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list all transactions")

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransactionsByAccount answers 204 for an account the ledger has never
// recorded anything for; clients treat that the same as an empty 200 array.
func (h *transactionHandler) getTransactionsByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, err := strconv.Atoi(c.Param("accountID"))
	if err != nil {
		logger.Warn("Invalid account id", slog.String("account_id", c.Param("accountID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "account id has invalid format"})
		return
	}

	logger = logger.With(slog.Int("account_id", accountID))
	logger.Info("Received request to get transactions for account")

	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error getting transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No transactions found for account")
			c.Status(http.StatusNoContent)
		default:
			logger.Error("Failed to get transactions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		}
		return
	}

	logger.Info("Transactions retrieved", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int("account_id", req.AccountID))
	logger.Info("Received request to create transaction", slog.String("amount", req.Amount.String()))

	stored, err := h.transactionService.CreateTransaction(c.Request.Context(), req.ToTransaction())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created", slog.Int("transaction_id", stored.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(stored))
}
