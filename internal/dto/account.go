package dto

import (
	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a new account.
// A positive initial credit produces a corresponding ledger transaction.
type OpenAccountRequest struct {
	CustomerID    int             `json:"customerId" binding:"required,gt=0"`
	InitialCredit decimal.Decimal `json:"initialCredit" binding:"gte=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID  int             `json:"accountID"`
	CustomerID int             `json:"customerID"`
	Balance    decimal.Decimal `json:"balance"`
}

// OpenAccountResponse is returned by the account opening endpoint. When the
// account was created but its opening transaction never reached the ledger,
// LedgerRecorded is false and Warning describes the divergence; the account
// itself is still reported because it exists.
type OpenAccountResponse struct {
	Account        AccountResponse `json:"account"`
	LedgerRecorded bool            `json:"ledgerRecorded"`
	Warning        string          `json:"warning,omitempty"`
}

// EnrichedAccountResponse is an account with its ledger history attached.
type EnrichedAccountResponse struct {
	AccountResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:  acc.AccountID,
		CustomerID: acc.CustomerID,
		Balance:    acc.Balance,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ToEnrichedAccountResponse converts a domain.EnrichedAccount to its DTO.
func ToEnrichedAccountResponse(acc *domain.EnrichedAccount) EnrichedAccountResponse {
	return EnrichedAccountResponse{
		AccountResponse: ToAccountResponse(&acc.Account),
		Transactions:    ToListTransactionResponse(acc.Transactions),
	}
}

// ToListEnrichedAccountResponse converts a slice of domain.EnrichedAccount preserving order.
func ToListEnrichedAccountResponse(accounts []domain.EnrichedAccount) []EnrichedAccountResponse {
	res := make([]EnrichedAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToEnrichedAccountResponse(&acc)
	}
	return res
}
