package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// Endpoints lists the public routes reported by GET /
var Endpoints = []string{
	"/chat",
	"/purchase",
	"/users",
	"/users/:userId",
	"/gold-price",
	"/analytics",
	"/health",
}

// SystemHandler serves service metadata and demo payloads
type SystemHandler struct {
	storeName   string
	backendName string
}

// NewSystemHandler creates a handler reporting the active store and text backend.
// An empty backendName means replies come from local rules.
func NewSystemHandler(storeName, backendName string) *SystemHandler {
	if backendName == "" {
		backendName = "rules"
	}
	return &SystemHandler{
		storeName:   storeName,
		backendName: backendName,
	}
}

// Info handles the GET / endpoint
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		Message:   "Gold Investment Chatbot API",
		Endpoints: Endpoints,
	})
}

// Health handles the GET /health endpoint
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Store:   h.storeName,
		Backend: h.backendName,
	})
}

// ChatExamples handles the GET /test/chat-examples endpoint
func (h *SystemHandler) ChatExamples(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ChatExamplesResponse{
		GoldRelatedQueries: []string{
			"What is the current gold price?",
			"Should I invest in gold?",
			"How do I buy digital gold?",
			"Is gold a good investment for my portfolio?",
		},
		NonGoldQueries: []string{
			"What's the weather today?",
			"How do I cook pasta?",
			"Tell me about stocks",
		},
	})
}

// PurchaseExample handles the GET /test/purchase-example endpoint
func (h *SystemHandler) PurchaseExample(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PurchaseExampleResponse{
		ExampleRequest: dto.PurchaseRequest{
			UserID:             "user123",
			DisplayName:        "John Doe",
			Email:              "john@example.com",
			AmountBaseCurrency: decimal.NewFromInt(100),
		},
		Note: "POST this to /purchase endpoint",
	})
}
