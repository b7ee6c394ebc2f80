package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// MarketHandler serves the gold price and purchase analytics
type MarketHandler struct {
	oracle       usecase.PriceOracle
	analytics    usecase.AnalyticsUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMarketHandler creates a new market handler instance
func NewMarketHandler(
	oracle usecase.PriceOracle,
	analytics usecase.AnalyticsUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *MarketHandler {
	return &MarketHandler{
		oracle:       oracle,
		analytics:    analytics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GoldPrice handles the GET /gold-price endpoint
func (h *MarketHandler) GoldPrice(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewGoldPriceResponse(h.oracle.Quote(), h.timeProvider.Now()))
}

// Analytics handles the GET /analytics endpoint
func (h *MarketHandler) Analytics(c *gin.Context) {
	summary, err := h.analytics.Summarize(c.Request.Context())
	if err != nil {
		h.logger.Error("Error summarizing purchases", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalyticsResponse(summary))
}
