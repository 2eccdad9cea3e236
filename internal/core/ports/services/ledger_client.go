package services

import (
	"context"

	"github.com/paymentbank/pb_backend/internal/core/domain"
)

// LedgerClient is the only component allowed to cross the network boundary to
// the ledger service. Implementations must classify every failure into one of
// the apperrors.LedgerErrorKind values.
type LedgerClient interface {
	// FetchTransactions returns the ledger history for an account. Absence of
	// transactions is the empty (non-nil) slice, not an error. Idempotent, so
	// implementations may retry transport failures a bounded number of times.
	FetchTransactions(ctx context.Context, accountID int) ([]domain.Transaction, error)

	// SubmitTransaction records a transaction in the ledger and returns the
	// stored record with its server-assigned id. Never retried internally: a
	// retry after an ambiguous failure could duplicate the transaction.
	SubmitTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}
