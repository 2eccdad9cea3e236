package memory

import (
	"context"
	"sync"
	"time"

	"github.com/paymentbank/pb_backend/internal/core/domain"
	portsrepo "github.com/paymentbank/pb_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionRepository is the in-memory ledger store. Records are immutable
// once created; identifier allocation is serialized by the mutex and allocates
// max+1 in the ledger's own identity space.
type TransactionRepository struct {
	mu           sync.Mutex
	transactions map[int][]domain.Transaction // keyed by account id
}

// NewTransactionRepository creates an empty ledger store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[int][]domain.Transaction),
	}
}

// NewTransactionRepositoryWithFixtures creates a ledger pre-loaded with the
// demo transaction history matching the account store fixtures.
func NewTransactionRepositoryWithFixtures() *TransactionRepository {
	r := NewTransactionRepository()
	r.transactions[1] = []domain.Transaction{
		{TransactionID: 1, AccountID: 1, CustomerID: 1, Amount: decimal.NewFromInt(7), CreatedAt: time.Date(2018, 1, 13, 0, 0, 0, 0, time.UTC)},
		{TransactionID: 2, AccountID: 1, CustomerID: 1, Amount: decimal.NewFromInt(3), CreatedAt: time.Date(2018, 3, 29, 0, 0, 0, 0, time.UTC)},
	}
	r.transactions[2] = []domain.Transaction{
		{TransactionID: 3, AccountID: 2, CustomerID: 1, Amount: decimal.NewFromInt(20), CreatedAt: time.Date(2019, 2, 19, 0, 0, 0, 0, time.UTC)},
	}
	r.transactions[3] = []domain.Transaction{
		{TransactionID: 4, AccountID: 3, CustomerID: 2, Amount: decimal.NewFromInt(18), CreatedAt: time.Date(2020, 5, 26, 0, 0, 0, 0, time.UTC)},
		{TransactionID: 5, AccountID: 3, CustomerID: 2, Amount: decimal.NewFromInt(12), CreatedAt: time.Date(2020, 5, 26, 0, 0, 0, 0, time.UTC)},
	}
	return r
}

func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []domain.Transaction
	for _, txns := range r.transactions {
		all = append(all, txns...)
	}
	return all, nil
}

// ListTransactionsByAccount returns nil (not an empty slice) for an account
// the ledger has never recorded anything for; the handler maps that to a
// no-content response.
func (r *TransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, ok := r.transactions[accountID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.Transaction, len(txns))
	copy(out, txns)
	return out, nil
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, txns := range r.transactions {
		for _, t := range txns {
			if t.TransactionID > maxID {
				maxID = t.TransactionID
			}
		}
	}

	txn.TransactionID = maxID + 1
	r.transactions[txn.AccountID] = append(r.transactions[txn.AccountID], txn)
	return txn, nil
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)
