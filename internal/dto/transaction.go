package dto

import (
	"time"

	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction in
// the ledger. The id is assigned by the ledger store; any id sent by the
// caller is ignored.
type CreateTransactionRequest struct {
	AccountID  int             `json:"accountID" binding:"required,gt=0"`
	CustomerID int             `json:"customerID"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// TransactionResponse defines the data returned for a transaction.
// The field names match the wire format the ledger client decodes.
type TransactionResponse struct {
	TransactionID int             `json:"transactionID"`
	AccountID     int             `json:"accountID"`
	CustomerID    int             `json:"customerID"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransaction converts the request to a domain.Transaction.
func (r CreateTransactionRequest) ToTransaction() domain.Transaction {
	return domain.Transaction{
		AccountID:  r.AccountID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		CreatedAt:  r.CreatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		CustomerID:    txn.CustomerID,
		Amount:        txn.Amount,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction preserving order.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
