package dto

import (
	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EnrichedCustomerResponse is the customer profile: identity, the aggregate
// balance summed from stored account balances, and the enriched accounts.
type EnrichedCustomerResponse struct {
	CustomerID int                       `json:"customerID"`
	Name       string                    `json:"name"`
	Surname    string                    `json:"surname"`
	Balance    decimal.Decimal           `json:"balance"`
	Accounts   []EnrichedAccountResponse `json:"accounts"`
}

// ToEnrichedCustomerResponse converts a domain.EnrichedCustomer to its DTO.
func ToEnrichedCustomerResponse(customer *domain.EnrichedCustomer) EnrichedCustomerResponse {
	return EnrichedCustomerResponse{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Surname:    customer.Surname,
		Balance:    customer.Balance,
		Accounts:   ToListEnrichedAccountResponse(customer.Accounts),
	}
}
