package domain

import "github.com/shopspring/decimal"

// EnrichedAccount is an account joined with its ledger history at read time.
// It is never persisted; the staleness window is one aggregation call.
type EnrichedAccount struct {
	Account
	Transactions []Transaction `json:"transactions"`
}

// EnrichedCustomer is a customer profile with the aggregate balance summed
// from the stored account balances. The balance is authoritative from the
// account store; the ledger contributes only the transaction history. The two
// are deliberately not reconciled at read time.
type EnrichedCustomer struct {
	Customer
	Balance  decimal.Decimal   `json:"balance"`
	Accounts []EnrichedAccount `json:"accounts"`
}
