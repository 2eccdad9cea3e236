package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
)

// RegisterAccountServiceRoutes sets up the account service routes, injecting
// dependencies through the service interfaces.
func RegisterAccountServiceRoutes(
	r *gin.Engine,
	enrichmentService portssvc.EnrichmentSvcFacade,
	openingService portssvc.AccountOpeningSvcFacade,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAccountRoutes(r, enrichmentService, openingService)
	registerCustomerRoutes(r, enrichmentService)
}

// RegisterLedgerServiceRoutes sets up the ledger service routes.
func RegisterLedgerServiceRoutes(r *gin.Engine, transactionService portssvc.TransactionSvcFacade) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerTransactionRoutes(r, transactionService)
}
