package memory

import (
	"context"
	"sync"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	portsrepo "github.com/paymentbank/pb_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRepository is an in-memory implementation of the account store.
// A single mutex serializes identifier allocation (read-max-then-append) so
// concurrent creates never share an id. All reads return copies so callers
// cannot mutate internal state.
type AccountRepository struct {
	mu        sync.Mutex
	accounts  map[int][]domain.Account // keyed by customer id, listing order preserved
	customers map[int]domain.Customer
}

// NewAccountRepository creates an empty account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:  make(map[int][]domain.Account),
		customers: make(map[int]domain.Customer),
	}
}

// NewAccountRepositoryWithFixtures creates a store pre-loaded with the demo
// customers and accounts the service ships with.
func NewAccountRepositoryWithFixtures() *AccountRepository {
	r := NewAccountRepository()
	r.accounts[1] = []domain.Account{
		{AccountID: 1, CustomerID: 1, Balance: decimal.NewFromInt(10)},
		{AccountID: 2, CustomerID: 1, Balance: decimal.NewFromInt(20)},
	}
	r.accounts[2] = []domain.Account{
		{AccountID: 3, CustomerID: 2, Balance: decimal.NewFromInt(30)},
	}
	r.customers[1] = domain.Customer{CustomerID: 1, Name: "John", Surname: "Sidorov"}
	r.customers[2] = domain.Customer{CustomerID: 2, Name: "Ivan", Surname: "Ivanov"}
	return r
}

// SeedCustomer inserts or replaces a customer record. Customers are read-only
// reference data at runtime; this exists for wiring and tests.
func (r *AccountRepository) SeedCustomer(customer domain.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.CustomerID] = customer
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []domain.Account
	for _, accounts := range r.accounts {
		all = append(all, accounts...)
	}
	return all, nil
}

func (r *AccountRepository) ListAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, ok := r.accounts[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	return out, nil
}

func (r *AccountRepository) FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &customer, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, customerID int, balance decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Ids are max+1, not dense; callers must not assume reuse.
	maxID := 0
	for _, accounts := range r.accounts {
		for _, account := range accounts {
			if account.AccountID > maxID {
				maxID = account.AccountID
			}
		}
	}

	account := domain.Account{
		AccountID:  maxID + 1,
		CustomerID: customerID,
		Balance:    balance,
	}
	r.accounts[customerID] = append(r.accounts[customerID], account)
	return account, nil
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)
