package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	"github.com/paymentbank/pb_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, customerID int, balance decimal.Decimal) (domain.Account, error) {
	args := m.Called(ctx, customerID, balance)
	return args.Get(0).(domain.Account), args.Error(1)
}

// MockLedgerClient is a mock type for the LedgerClient interface
type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) FetchTransactions(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerClient) SubmitTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type AccountOpeningServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	mockLedger *MockLedgerClient
	service    *services.AccountOpeningService
}

func (suite *AccountOpeningServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerClient)
	suite.service = services.NewAccountOpeningService(suite.mockRepo, suite.mockLedger)
}

// --- Test Cases ---

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_InvalidCustomerID() {
	ctx := context.Background()

	account, err := suite.service.OpenAccount(ctx, 0, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Validation fails fast: no store or ledger interaction at all.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "SubmitTransaction", mock.Anything, mock.Anything)
}

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_NegativeInitialCredit() {
	ctx := context.Background()

	account, err := suite.service.OpenAccount(ctx, 99, decimal.NewFromInt(-5))

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "negative")

	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_UnknownCustomer() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByID", mock.Anything, 42).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.OpenAccount(ctx, 42, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.Nil(account)
	// An unknown customer on open is a validation failure (bad request), not a 404.
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_ZeroCredit_NoLedgerCall() {
	ctx := context.Background()
	created := domain.Account{AccountID: 4, CustomerID: 1, Balance: decimal.Zero}

	suite.mockRepo.On("FindCustomerByID", mock.Anything, 1).Return(&domain.Customer{CustomerID: 1, Name: "John", Surname: "Sidorov"}, nil).Once()
	suite.mockRepo.On("CreateAccount", mock.Anything, 1, decimal.Zero).Return(created, nil).Once()

	account, err := suite.service.OpenAccount(ctx, 1, decimal.Zero)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(4, account.AccountID)
	suite.True(account.Balance.IsZero())

	// A zero initial credit carries no transaction record.
	suite.mockLedger.AssertNotCalled(suite.T(), "SubmitTransaction", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_PositiveCredit_SubmitsOnce() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(123.45)
	created := domain.Account{AccountID: 4, CustomerID: 1, Balance: amount}

	suite.mockRepo.On("FindCustomerByID", mock.Anything, 1).Return(&domain.Customer{CustomerID: 1}, nil).Once()
	suite.mockRepo.On("CreateAccount", mock.Anything, 1, amount).Return(created, nil).Once()
	suite.mockLedger.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == 4 && txn.CustomerID == 1 && txn.Amount.Equal(amount) && !txn.CreatedAt.IsZero()
	})).Return(&domain.Transaction{TransactionID: 6, AccountID: 4, CustomerID: 1, Amount: amount, CreatedAt: time.Now()}, nil).Once()

	account, err := suite.service.OpenAccount(ctx, 1, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(4, account.AccountID)

	suite.mockLedger.AssertNumberOfCalls(suite.T(), "SubmitTransaction", 1)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AccountOpeningServiceTestSuite) TestOpenAccount_LedgerUnreachable_ReportsDivergence() {
	ctx := context.Background()
	amount := decimal.NewFromInt(50)
	created := domain.Account{AccountID: 4, CustomerID: 1, Balance: amount}

	suite.mockRepo.On("FindCustomerByID", mock.Anything, 1).Return(&domain.Customer{CustomerID: 1}, nil).Once()
	suite.mockRepo.On("CreateAccount", mock.Anything, 1, amount).Return(created, nil).Once()
	suite.mockLedger.On("SubmitTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Return(nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "submit"}).Once()

	account, err := suite.service.OpenAccount(ctx, 1, amount)

	// The account exists even though the ledger step failed; both facts are reported.
	suite.Require().Error(err)
	suite.Require().NotNil(account)
	suite.Equal(4, account.AccountID)

	var sagaErr *apperrors.SagaError
	suite.Require().ErrorAs(err, &sagaErr)
	suite.True(sagaErr.AccountCreated)
	suite.False(sagaErr.LedgerRecorded)
	suite.Equal(4, sagaErr.AccountID)

	var lerr *apperrors.LedgerError
	suite.Require().ErrorAs(err, &lerr)
	suite.Equal(apperrors.LedgerUnreachable, lerr.Kind)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestAccountOpeningServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountOpeningServiceTestSuite))
}
