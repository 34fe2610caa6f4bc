package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tradesim/tradesim_backend/internal/apperrors"
	"github.com/tradesim/tradesim_backend/internal/core/domain"
	portssvc "github.com/tradesim/tradesim_backend/internal/core/ports/services"
	"github.com/tradesim/tradesim_backend/internal/dto"
	"github.com/tradesim/tradesim_backend/internal/handlers"
	"github.com/tradesim/tradesim_backend/internal/platform/market"
	"github.com/tradesim/tradesim_backend/pkg/config"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Onboard(ctx context.Context, name string, initialFunding decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, name, initialFunding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) Deposit(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) Withdraw(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) Buy(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error) {
	args := m.Called(ctx, symbol, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) Sell(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error) {
	args := m.Called(ctx, symbol, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockAccountService) Reset(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockAccountService) Summary(ctx context.Context) domain.PortfolioSummary {
	args := m.Called(ctx)
	return args.Get(0).(domain.PortfolioSummary)
}

func (m *MockAccountService) Holdings(ctx context.Context) []domain.Position {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Position)
}

func (m *MockAccountService) Transactions(ctx context.Context) []domain.Transaction {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockAccountService) Snapshot(ctx context.Context) domain.Account {
	args := m.Called(ctx)
	return args.Get(0).(domain.Account)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	mockSvc *MockAccountService
	router  *gin.Engine
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSvc = new(MockAccountService)
	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true} // skip swagger routes in tests
	handlers.RegisterRoutes(suite.router, cfg, suite.mockSvc, market.NewStaticOracle(nil))
}

func (suite *AccountHandlerTestSuite) performJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTxn(kind domain.TransactionKind) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: "b6b1c2d3-0000-0000-0000-000000000001",
		Timestamp:     time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
		Kind:          kind,
		Symbol:        domain.NonTradeSymbol,
		Price:         decimal.Zero,
		Amount:        decimal.NewFromInt(1000),
		Status:        domain.StatusCompleted,
	}
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestOnboard_Success() {
	txn := sampleTxn(domain.Deposit)
	suite.mockSvc.On("Onboard", mock.Anything, "John Doe", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(1000))
	})).Return(txn, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/onboard",
		dto.OnboardRequest{Name: "John Doe", InitialFunding: decimal.NewFromInt(1000)})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DEPOSIT", resp.Kind)
	suite.Equal("2024-05-17 10:30:00", resp.Timestamp)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestOnboard_BlankNameFailsBinding() {
	// "notblank" rejects whitespace-only names before the service is called
	w := suite.performJSON(http.MethodPost, "/api/v1/account/onboard",
		dto.OnboardRequest{Name: "   ", InitialFunding: decimal.NewFromInt(1000)})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "Onboard")
}

func (suite *AccountHandlerTestSuite) TestOnboard_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/onboard", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	txn := sampleTxn(domain.Deposit)
	suite.mockSvc.On("Deposit", mock.Anything, mock.Anything).Return(txn, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/deposit",
		dto.FundsRequest{Amount: decimal.NewFromInt(1000)})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeposit_InvalidAmountMapsTo400() {
	suite.mockSvc.On("Deposit", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrInvalidAmount)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/deposit",
		dto.FundsRequest{Amount: decimal.NewFromInt(-5)})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InsufficientFundsMapsTo422() {
	suite.mockSvc.On("Withdraw", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("insufficient balance for withdrawal: %w", apperrors.ErrInsufficientFunds)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/withdraw",
		dto.FundsRequest{Amount: decimal.NewFromInt(9999)})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AccountHandlerTestSuite) TestBuy_UnknownSymbolMapsTo404() {
	suite.mockSvc.On("Buy", mock.Anything, "UNKNOWN", int64(1)).
		Return(nil, fmt.Errorf("no price available for UNKNOWN: %w", apperrors.ErrUnknownSymbol)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/buy",
		dto.TradeRequest{Symbol: "UNKNOWN", Quantity: 1})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestBuy_NonPositiveQuantityFailsBinding() {
	w := suite.performJSON(http.MethodPost, "/api/v1/account/buy",
		dto.TradeRequest{Symbol: "COALINDIA", Quantity: -1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "Buy")
}

func (suite *AccountHandlerTestSuite) TestSell_NoSuchHoldingMapsTo404() {
	suite.mockSvc.On("Sell", mock.Anything, "MARICO", int64(1)).
		Return(nil, fmt.Errorf("you do not own any shares of MARICO: %w", apperrors.ErrNoSuchHolding)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/sell",
		dto.TradeRequest{Symbol: "MARICO", Quantity: 1})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "do not own any shares of MARICO")
}

func (suite *AccountHandlerTestSuite) TestSell_InsufficientSharesMapsTo422() {
	suite.mockSvc.On("Sell", mock.Anything, "COALINDIA", int64(5)).
		Return(nil, fmt.Errorf("you only own 2 shares of COALINDIA: %w", apperrors.ErrInsufficientShares)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/sell",
		dto.TradeRequest{Symbol: "COALINDIA", Quantity: 5})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetSummary() {
	suite.mockSvc.On("Summary", mock.Anything).Return(domain.PortfolioSummary{
		Balance:       decimal.NewFromInt(550),
		MarketValue:   decimal.NewFromInt(450),
		TotalValue:    decimal.NewFromInt(1000),
		TotalPL:       decimal.Zero,
		PLPercent:     decimal.Zero,
		FundedCapital: decimal.NewFromInt(1000),
	}).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/account/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TotalValue.Equal(decimal.NewFromInt(1000)))
}

func (suite *AccountHandlerTestSuite) TestGetHoldings() {
	suite.mockSvc.On("Holdings", mock.Anything).Return([]domain.Position{
		{Symbol: "COALINDIA", Quantity: 2, AvgPrice: decimal.NewFromInt(450)},
	}).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/account/holdings", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PositionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("COALINDIA", resp[0].Symbol)
}

func (suite *AccountHandlerTestSuite) TestGetTransactions() {
	suite.mockSvc.On("Transactions", mock.Anything).Return([]domain.Transaction{*sampleTxn(domain.Deposit)}).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/account/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("COMPLETED", resp[0].Status)
}

func (suite *AccountHandlerTestSuite) TestGetAccountSnapshot() {
	suite.mockSvc.On("Snapshot", mock.Anything).Return(domain.Account{
		UserName:      "John Doe",
		Balance:       decimal.NewFromInt(550),
		FundedCapital: decimal.NewFromInt(1000),
	}).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/account", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("John Doe", resp.UserName)
	suite.True(resp.Onboarded)
}

func (suite *AccountHandlerTestSuite) TestReset() {
	suite.mockSvc.On("Reset", mock.Anything).Return().Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/account/reset", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestHealth() {
	w := suite.performJSON(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Market routes (real static oracle, no mock needed) ---

func (suite *AccountHandlerTestSuite) TestListPrices() {
	w := suite.performJSON(http.MethodGet, "/api/v1/prices", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 3)
	suite.Equal("COALINDIA", resp[0].Symbol)
}

func (suite *AccountHandlerTestSuite) TestGetPrice_CaseInsensitive() {
	w := suite.performJSON(http.MethodGet, "/api/v1/prices/marico", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Price.Equal(decimal.NewFromFloat(670.00)))
	suite.Equal("MARICO", resp.Symbol) // canonical symbol, not the raw path param
}

func (suite *AccountHandlerTestSuite) TestGetPrice_UnknownSymbol() {
	w := suite.performJSON(http.MethodGet, "/api/v1/prices/UNKNOWN", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
