package repositories

import (
	"context"

	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts and the
// read-only customer reference data that lives alongside them.
type AccountRepository interface {
	// ListAccounts returns every account in the store.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByCustomer returns the accounts owned by customerID.
	// Returns apperrors.ErrNotFound when the customer owns no accounts.
	ListAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error)

	// FindCustomerByID returns the customer record or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error)

	// CreateAccount allocates the next account identifier and appends the new
	// account. It performs no validation; callers must have validated the
	// customer before calling. There is no undo for this append.
	CreateAccount(ctx context.Context, customerID int, balance decimal.Decimal) (domain.Account, error)
}
