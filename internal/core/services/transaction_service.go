package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	portsrepo "github.com/paymentbank/pb_backend/internal/core/ports/repositories"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
	"github.com/paymentbank/pb_backend/internal/middleware"
)

// TransactionService is the ledger service's business layer over the
// transaction store.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ListTransactionsByAccount returns apperrors.ErrNotFound for an account the
// ledger has never recorded anything for; the handler maps that to 204.
func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: account id has invalid format", apperrors.ErrValidation)
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %d: %w", accountID, err)
	}
	if txns == nil {
		return nil, apperrors.ErrNotFound
	}
	return txns, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if txn.AccountID <= 0 {
		return nil, fmt.Errorf("%w: account id has invalid format", apperrors.ErrValidation)
	}
	if txn.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must not be 0", apperrors.ErrValidation)
	}

	stored, err := s.transactionRepo.CreateTransaction(ctx, txn)
	if err != nil {
		logger.Error("Failed to store transaction", slog.Int("account_id", txn.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to store transaction for account %d: %w", txn.AccountID, err)
	}

	logger.Info("Transaction stored", slog.Int("transaction_id", stored.TransactionID), slog.Int("account_id", stored.AccountID))
	return &stored, nil
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
