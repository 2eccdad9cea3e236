package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/paymentbank/pb_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_FixturesAreLoaded(t *testing.T) {
	repo := memory.NewAccountRepositoryWithFixtures()
	ctx := context.Background()

	all, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	accounts, err := repo.ListAccountsByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 1, accounts[0].AccountID)
	assert.Equal(t, 2, accounts[1].AccountID)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(10)))

	customer, err := repo.FindCustomerByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", customer.Name)
	assert.Equal(t, "Ivanov", customer.Surname)
}

func TestAccountRepository_UnknownCustomerIsNotFound(t *testing.T) {
	repo := memory.NewAccountRepositoryWithFixtures()
	ctx := context.Background()

	_, err := repo.ListAccountsByCustomer(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindCustomerByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRepository_CreateAllocatesNextID(t *testing.T) {
	repo := memory.NewAccountRepositoryWithFixtures()
	ctx := context.Background()

	account, err := repo.CreateAccount(ctx, 2, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, 4, account.AccountID)
	assert.Equal(t, 2, account.CustomerID)

	// New account appends after the customer's existing accounts.
	accounts, err := repo.ListAccountsByCustomer(ctx, 2)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 4, accounts[1].AccountID)
}

func TestAccountRepository_EmptyStoreStartsAtOne(t *testing.T) {
	repo := memory.NewAccountRepository()
	repo.SeedCustomer(domain.Customer{CustomerID: 7, Name: "Ada", Surname: "Lovelace"})

	account, err := repo.CreateAccount(context.Background(), 7, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 1, account.AccountID)
}

func TestAccountRepository_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			account, err := repo.CreateAccount(ctx, 1, decimal.Zero)
			assert.NoError(t, err)
			ids <- account.AccountID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate account id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestAccountRepository_ReadsReturnCopies(t *testing.T) {
	repo := memory.NewAccountRepositoryWithFixtures()
	ctx := context.Background()

	accounts, err := repo.ListAccountsByCustomer(ctx, 1)
	require.NoError(t, err)
	accounts[0].Balance = decimal.NewFromInt(999)

	again, err := repo.ListAccountsByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.True(t, again[0].Balance.Equal(decimal.NewFromInt(10)))
}
