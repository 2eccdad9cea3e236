package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable ledger record for an account. It lives in the
// ledger store's identity space, which is independent from the account store's.
// The amount may carry either sign but is never zero once created.
type Transaction struct {
	TransactionID int             `json:"transactionID"`
	AccountID     int             `json:"accountID"`
	CustomerID    int             `json:"customerID"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}
