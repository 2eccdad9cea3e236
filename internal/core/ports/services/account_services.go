package services

import (
	"context"

	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountOpeningSvcFacade orchestrates the two-step account opening saga.
type AccountOpeningSvcFacade interface {
	// OpenAccount validates its inputs, creates the account, and, for a
	// positive initial credit, records the opening transaction in the ledger.
	// When the ledger step fails after the account was created, the created
	// account is returned together with a *apperrors.SagaError describing the
	// divergence.
	OpenAccount(ctx context.Context, customerID int, initialCredit decimal.Decimal) (*domain.Account, error)
}

// EnrichmentSvcFacade reconstructs consistent read views spanning the account
// store and the ledger.
type EnrichmentSvcFacade interface {
	// ListAllAccounts returns every account without enrichment.
	ListAllAccounts(ctx context.Context) ([]domain.Account, error)

	// AccountsByCustomer returns the customer's accounts, each enriched with
	// its ledger history, preserving the account store's listing order.
	AccountsByCustomer(ctx context.Context, customerID int) ([]domain.EnrichedAccount, error)

	// CustomerProfile returns the customer with the sum of stored account
	// balances and the same per-account enrichment.
	CustomerProfile(ctx context.Context, customerID int) (*domain.EnrichedCustomer, error)
}

// TransactionSvcFacade is the ledger service's own business surface.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount returns apperrors.ErrNotFound when the ledger
	// has never recorded anything for the account.
	ListTransactionsByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error)

	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}
