package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatUseCase usecase.ChatUseCase
	logger      coreport.Logger
}

// NewChatHandler creates a new chat handler instance
func NewChatHandler(chatUseCase usecase.ChatUseCase, logger coreport.Logger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		logger:      logger,
	}
}

// Chat handles the POST /chat endpoint
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid chat request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	reply := h.chatUseCase.Respond(c.Request.Context(), entity.ChatTurn{
		Message: req.Message,
		UserID:  req.UserID,
	})

	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:           reply.ResponseText,
		IsGoldRelated:      reply.IsGoldRelated,
		UserID:             reply.UserID,
		PurchaseEncouraged: reply.PurchaseEncouraged,
	})
}
