package domain

import "github.com/shopspring/decimal"

// Account is a customer account held in the account store. Identity is
// assigned by the store on creation and never changes; the balance is set
// once by the opening saga.
type Account struct {
	AccountID  int             `json:"accountID"`
	CustomerID int             `json:"customerID"`
	Balance    decimal.Decimal `json:"balance"`
}

// Customer is read-only reference data owned by the account store.
type Customer struct {
	CustomerID int    `json:"customerID"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
}
