package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	portsrepo "github.com/paymentbank/pb_backend/internal/core/ports/repositories"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
	"github.com/paymentbank/pb_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// EnrichmentService joins accounts from the local store with their ledger
// history, one remote fetch per account. The policy is strict: partial ledger
// data presented as complete would misstate financial history, so any failed
// fan-out leg aborts the whole read.
type EnrichmentService struct {
	accountRepo    portsrepo.AccountRepository
	ledgerClient   portssvc.LedgerClient
	maxConcurrency int
}

// NewEnrichmentService creates a new EnrichmentService. maxConcurrency caps
// how many fan-out legs run at once; it must be at least 1.
func NewEnrichmentService(accountRepo portsrepo.AccountRepository, ledgerClient portssvc.LedgerClient, maxConcurrency int) *EnrichmentService {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &EnrichmentService{
		accountRepo:    accountRepo,
		ledgerClient:   ledgerClient,
		maxConcurrency: maxConcurrency,
	}
}

// ListAllAccounts returns every account without enrichment.
func (s *EnrichmentService) ListAllAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// AccountsByCustomer returns the customer's accounts enriched with their
// ledger history, in the account store's listing order.
func (s *EnrichmentService) AccountsByCustomer(ctx context.Context, customerID int) ([]domain.EnrichedAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: invalid customer id %d", apperrors.ErrValidation, customerID)
	}

	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to list accounts by customer", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	enriched, err := s.enrichAccounts(ctx, accounts)
	if err != nil {
		logger.Error("Account enrichment aborted", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Debug("Accounts enriched", slog.Int("customer_id", customerID), slog.Int("count", len(enriched)))
	return enriched, nil
}

// CustomerProfile returns the customer's profile: the aggregate balance summed
// from stored account balances and the per-account enrichment. The stored
// balances are authoritative for the aggregate; the ledger history rides along
// untouched and the two are not reconciled.
func (s *EnrichmentService) CustomerProfile(ctx context.Context, customerID int) (*domain.EnrichedCustomer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: invalid customer id %d", apperrors.ErrValidation, customerID)
	}

	customer, err := s.accountRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	profile := &domain.EnrichedCustomer{
		Customer: *customer,
		Balance:  decimal.Zero,
		Accounts: []domain.EnrichedAccount{},
	}

	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		// A customer without accounts still has a profile.
		if errors.Is(err, apperrors.ErrNotFound) {
			return profile, nil
		}
		logger.Error("Failed to list accounts for profile", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	for _, account := range accounts {
		profile.Balance = profile.Balance.Add(account.Balance)
	}

	enriched, err := s.enrichAccounts(ctx, accounts)
	if err != nil {
		logger.Error("Profile enrichment aborted", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}
	profile.Accounts = enriched

	return profile, nil
}

// enrichAccounts fans out one ledger fetch per account. Legs run concurrently
// up to the configured cap; the first failure cancels every pending leg and
// fails the whole read. The result preserves the input order.
func (s *EnrichmentService) enrichAccounts(ctx context.Context, accounts []domain.Account) ([]domain.EnrichedAccount, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	enriched := make([]domain.EnrichedAccount, len(accounts))
	sem := make(chan struct{}, s.maxConcurrency)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i, account := range accounts {
		wg.Add(1)
		go func(i int, account domain.Account) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			txns, err := s.ledgerClient.FetchTransactions(ctx, account.AccountID)
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			enriched[i] = domain.EnrichedAccount{Account: account, Transactions: txns}
		}(i, account)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return enriched, nil
}

var _ portssvc.EnrichmentSvcFacade = (*EnrichmentService)(nil)
