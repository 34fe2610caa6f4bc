package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tradesim/tradesim_backend/internal/core/ports"
	"github.com/tradesim/tradesim_backend/internal/dto"
)

// marketHandler exposes the mock price feed so front-ends can render the trade panel.
type marketHandler struct {
	oracle ports.PriceOracle
}

// registerMarketRoutes registers routes related to the price oracle.
func registerMarketRoutes(rg *gin.RouterGroup, oracle ports.PriceOracle) {
	h := &marketHandler{oracle: oracle}

	prices := rg.Group("/prices")
	{
		prices.GET("", h.listPrices)
		prices.GET("/:symbol", h.getPrice)
	}
}

// listPrices godoc
// @Summary List the tradable universe
// @Description Returns every known symbol with its current price
// @Tags market
// @Produce  json
// @Success 200 {array} dto.QuoteResponse
// @Router /prices [get]
func (h *marketHandler) listPrices(c *gin.Context) {
	symbols := h.oracle.Symbols()
	quotes := make([]dto.QuoteResponse, len(symbols))
	for i, symbol := range symbols {
		quotes[i] = dto.QuoteResponse{Symbol: symbol, Price: h.oracle.Price(symbol)}
	}
	c.JSON(http.StatusOK, quotes)
}

// getPrice godoc
// @Summary Get the price of one symbol
// @Description Returns the current unit price; 404 when the oracle has no price
// @Tags market
// @Produce  json
// @Param   symbol path string true "Ticker symbol (case-insensitive)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Unknown symbol"
// @Router /prices/{symbol} [get]
func (h *marketHandler) getPrice(c *gin.Context) {
	// Respond with the canonical symbol, not the raw path param
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	price := h.oracle.Price(symbol)
	if price.Sign() <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no price available for " + symbol})
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Symbol: symbol, Price: price})
}
