package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/tradesim/tradesim_backend/internal/apperrors"
	portssvc "github.com/tradesim/tradesim_backend/internal/core/ports/services"
	"github.com/tradesim/tradesim_backend/internal/dto"
	"github.com/tradesim/tradesim_backend/internal/middleware"
)

// accountHandler handles HTTP requests against the simulated brokerage account.
//
// The account core assumes a single caller at a time; HTTP is a concurrent caller,
// so the handler serializes every service call behind a mutex. This is the external
// mutual exclusion layered on top of the core, not part of it.
type accountHandler struct {
	mu             sync.Mutex
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(svc portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: svc}
}

// registerAccountRoutes registers routes related to the account.
func registerAccountRoutes(rg *gin.RouterGroup, svc portssvc.AccountSvcFacade) {
	h := newAccountHandler(svc)

	account := rg.Group("/account")
	{
		account.GET("", h.getAccount)
		account.GET("/summary", h.getSummary)
		account.GET("/holdings", h.getHoldings)
		account.GET("/transactions", h.getTransactions)
		account.POST("/onboard", h.onboard)
		account.POST("/deposit", h.deposit)
		account.POST("/withdraw", h.withdraw)
		account.POST("/buy", h.buy)
		account.POST("/sell", h.sell)
		account.POST("/reset", h.reset)
	}
}

// respondAccountError translates a service error into an HTTP response.
// Every account error is recoverable data, never a server fault.
func respondAccountError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status int
	switch {
	case errors.Is(err, apperrors.ErrInvalidName),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidQuantity):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnknownSymbol),
		errors.Is(err, apperrors.ErrNoSuchHolding):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrInsufficientShares):
		status = http.StatusUnprocessableEntity
	default:
		logger.Error("Unexpected account service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logger.Warn("Account operation rejected", slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// onboard godoc
// @Summary Onboard the account user
// @Description Sets the user name and performs the initial deposit
// @Tags account
// @Accept  json
// @Produce  json
// @Param   onboarding body dto.OnboardRequest true "User name and initial funding"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid name or funding amount"
// @Router /account/onboard [post]
func (h *accountHandler) onboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Onboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.mu.Lock()
	txn, err := h.accountService.Onboard(c.Request.Context(), req.Name, req.InitialFunding)
	h.mu.Unlock()
	if err != nil {
		respondAccountError(c, err)
		return
	}

	logger.Info("User onboarded", slog.String("user_name", req.Name))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// deposit godoc
// @Summary Deposit funds
// @Description Credits the cash balance and raises the funded-capital baseline
// @Tags account
// @Accept  json
// @Produce  json
// @Param   funds body dto.FundsRequest true "Amount to deposit"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /account/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.mu.Lock()
	txn, err := h.accountService.Deposit(c.Request.Context(), req.Amount)
	h.mu.Unlock()
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw funds
// @Description Debits the cash balance; the funded-capital baseline is unchanged
// @Tags account
// @Accept  json
// @Produce  json
// @Param   funds body dto.FundsRequest true "Amount to withdraw"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Router /account/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.mu.Lock()
	txn, err := h.accountService.Withdraw(c.Request.Context(), req.Amount)
	h.mu.Unlock()
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// buy godoc
// @Summary Buy shares
// @Description Purchases shares at the current oracle price
// @Tags account
// @Accept  json
// @Produce  json
// @Param   order body dto.TradeRequest true "Symbol and quantity"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid quantity"
// @Failure 404 {object} map[string]string "Unknown symbol"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Router /account/buy [post]
func (h *accountHandler) buy(c *gin.Context) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.mu.Lock()
	txn, err := h.accountService.Buy(c.Request.Context(), req.Symbol, req.Quantity)
	h.mu.Unlock()
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// sell godoc
// @Summary Sell shares
// @Description Liquidates shares at the current oracle price
// @Tags account
// @Accept  json
// @Produce  json
// @Param   order body dto.TradeRequest true "Symbol and quantity"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid quantity"
// @Failure 404 {object} map[string]string "No holding for symbol"
// @Failure 422 {object} map[string]string "Insufficient shares"
// @Router /account/sell [post]
func (h *accountHandler) sell(c *gin.Context) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.mu.Lock()
	txn, err := h.accountService.Sell(c.Request.Context(), req.Symbol, req.Quantity)
	h.mu.Unlock()
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getAccount godoc
// @Summary Get the account snapshot
// @Description Returns the raw account state (user name, balance, funded capital)
// @Tags account
// @Produce  json
// @Success 200 {object} dto.AccountResponse
// @Router /account [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	h.mu.Lock()
	snap := h.accountService.Snapshot(c.Request.Context())
	h.mu.Unlock()

	c.JSON(http.StatusOK, dto.ToAccountResponse(snap))
}

// getSummary godoc
// @Summary Get the portfolio summary
// @Description Returns the derived valuation at current oracle prices
// @Tags account
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Router /account/summary [get]
func (h *accountHandler) getSummary(c *gin.Context) {
	h.mu.Lock()
	summary := h.accountService.Summary(c.Request.Context())
	h.mu.Unlock()

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getHoldings godoc
// @Summary List current holdings
// @Description Returns positions sorted by symbol with live prices and unrealized P/L
// @Tags account
// @Produce  json
// @Success 200 {array} dto.PositionResponse
// @Router /account/holdings [get]
func (h *accountHandler) getHoldings(c *gin.Context) {
	h.mu.Lock()
	positions := h.accountService.Holdings(c.Request.Context())
	h.mu.Unlock()

	c.JSON(http.StatusOK, dto.ToListPositionResponse(positions))
}

// getTransactions godoc
// @Summary List the transaction ledger
// @Description Returns every transaction in chronological (append) order
// @Tags account
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Router /account/transactions [get]
func (h *accountHandler) getTransactions(c *gin.Context) {
	h.mu.Lock()
	txns := h.accountService.Transactions(c.Request.Context())
	h.mu.Unlock()

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// reset godoc
// @Summary Reset the simulation
// @Description Discards all state and returns the account to the unonboarded state
// @Tags account
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /account/reset [post]
func (h *accountHandler) reset(c *gin.Context) {
	h.mu.Lock()
	h.accountService.Reset(c.Request.Context())
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Simulation reset"})
}
