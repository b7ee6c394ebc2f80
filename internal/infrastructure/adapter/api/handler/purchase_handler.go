package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// PurchaseHandler handles purchase HTTP requests
type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
		logger:          logger,
	}
}

// Purchase handles the POST /purchase endpoint
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid purchase request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.purchaseUseCase.Purchase(c.Request.Context(), req.ToUseCase())
	if err != nil {
		// The use case has already chosen the status code and message
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}
