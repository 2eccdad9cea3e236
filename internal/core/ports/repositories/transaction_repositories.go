package repositories

import (
	"context"

	"github.com/paymentbank/pb_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for the ledger store.
// Transactions are immutable once created.
type TransactionRepository interface {
	// ListTransactions returns every transaction in the store.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount returns the transactions recorded for
	// accountID, or a nil slice when the account has never been seen.
	ListTransactionsByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error)

	// CreateTransaction allocates the next transaction identifier and stores
	// the record, returning it with the assigned id.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error)
}
