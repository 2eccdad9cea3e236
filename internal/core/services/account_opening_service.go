package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	portsrepo "github.com/paymentbank/pb_backend/internal/core/ports/repositories"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
	"github.com/paymentbank/pb_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// AccountOpeningService runs the account opening saga: create the account in
// the local store, then record the opening transaction in the remote ledger.
// The two steps cannot share a transaction, so a ledger failure after the
// create leaves a divergence that is reported, never rolled back.
type AccountOpeningService struct {
	accountRepo  portsrepo.AccountRepository
	ledgerClient portssvc.LedgerClient
}

// NewAccountOpeningService creates a new AccountOpeningService.
func NewAccountOpeningService(accountRepo portsrepo.AccountRepository, ledgerClient portssvc.LedgerClient) *AccountOpeningService {
	return &AccountOpeningService{
		accountRepo:  accountRepo,
		ledgerClient: ledgerClient,
	}
}

// OpenAccount validates inputs (fail fast, no side effects), creates the
// account, and for a positive initial credit submits the opening transaction.
// An initial credit of exactly zero carries no transaction record. When the
// submit fails the created account is returned together with a *SagaError so
// the caller can see both facts: the account exists, the ledger entry does not.
func (s *AccountOpeningService) OpenAccount(ctx context.Context, customerID int, initialCredit decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Preconditions, in order; first failure wins.
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: invalid customer id %d", apperrors.ErrValidation, customerID)
	}
	if initialCredit.IsNegative() {
		return nil, fmt.Errorf("%w: initial credit could not be negative", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer with id %d does not exist", apperrors.ErrValidation, customerID)
		}
		logger.Error("Failed to look up customer", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up customer %d: %w", customerID, err)
	}

	// Irreversible from here: the store has no delete.
	account, err := s.accountRepo.CreateAccount(ctx, customerID, initialCredit)
	if err != nil {
		logger.Error("Failed to create account", slog.Int("customer_id", customerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create account for customer %d: %w", customerID, err)
	}
	logger.Info("Account created", slog.Int("account_id", account.AccountID), slog.Int("customer_id", customerID))

	if initialCredit.IsZero() {
		return &account, nil
	}

	// The account store's lock is already released; the remote call must not
	// block concurrent local reads.
	txn := domain.Transaction{
		AccountID:  account.AccountID,
		CustomerID: customerID,
		Amount:     initialCredit,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.ledgerClient.SubmitTransaction(ctx, txn); err != nil {
		logger.Error("Opening transaction was not recorded in the ledger",
			slog.Int("account_id", account.AccountID),
			slog.String("error", err.Error()),
		)
		return &account, &apperrors.SagaError{
			AccountCreated: true,
			LedgerRecorded: false,
			AccountID:      account.AccountID,
			Err:            err,
		}
	}

	logger.Info("Opening transaction recorded", slog.Int("account_id", account.AccountID), slog.String("amount", initialCredit.String()))
	return &account, nil
}

var _ portssvc.AccountOpeningSvcFacade = (*AccountOpeningService)(nil)
