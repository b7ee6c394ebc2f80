package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/analytics"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/chat"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/intent"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/pricing"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/response"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	oracle, err := pricing.NewOracle(pricing.Settings{
		UnitPriceBase:  decimal.RequireFromString("65.50"),
		ConversionRate: decimal.RequireFromString("83.50"),
		BaseCurrency:   "USD",
		LocalCurrency:  "INR",
	}, tp)
	require.NoError(t, err)

	primary := repository.NewMemoryRecordStore()
	fallback := repository.NewMemoryRecordStore()
	settings := purchase.Settings{
		TaxRate:      decimal.RequireFromString("0.03"),
		MinimumLocal: decimal.RequireFromString("10"),
	}

	queries := record.NewQueryService(log, primary, fallback)
	chatService := chat.NewChatService(intent.NewRuleClassifier(), response.NewRuleGenerator(oracle), log)
	purchaseService := purchase.NewPurchaseService(oracle, primary, fallback, settings, tp, log)

	router := gin.New()
	SetupMiddlewares(router, log, tp, nil)
	SetupRoutes(router, Handlers{
		Chat:     handler.NewChatHandler(chatService, log),
		Purchase: handler.NewPurchaseHandler(purchaseService, log),
		Records:  handler.NewRecordHandler(queries, log),
		Market:   handler.NewMarketHandler(oracle, analytics.NewAggregator(queries), tp, log),
		System:   handler.NewSystemHandler(primary.Name(), ""),
	})
	return router
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestChatRoute(t *testing.T) {
	testCases := []struct {
		name              string
		body              any
		expectedStatus    int
		expectedGold      bool
		expectedEncourage bool
	}{
		{"Gold question", map[string]string{"message": "Should I invest in gold?", "userId": "u1"}, http.StatusOK, true, true},
		{"Off-topic question", map[string]string{"message": "How do I cook pasta?", "userId": "u1"}, http.StatusOK, false, false},
		{"Consent", map[string]string{"message": "yes", "userId": "u1"}, http.StatusOK, true, true},
		{"Missing message", map[string]string{"userId": "u1"}, http.StatusBadRequest, false, false},
		{"Malformed JSON", `{"message":`, http.StatusBadRequest, false, false},
	}

	router := newTestRouter(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rec := serve(router, http.MethodPost, "/chat", tc.body)

			// Assert
			require.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus != http.StatusOK {
				errResp := decode[dto.ErrorResponse](t, rec)
				assert.Equal(t, domainerr.CodeInvalidRequest, errResp.Code)
				return
			}
			resp := decode[dto.ChatResponse](t, rec)
			assert.Equal(t, tc.expectedGold, resp.IsGoldRelated)
			assert.Equal(t, tc.expectedEncourage, resp.PurchaseEncouraged)
			assert.Equal(t, "u1", resp.UserID)
			assert.NotEmpty(t, resp.Response)
		})
	}
}

func TestChatRoute_GeneratesUserID(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/chat", map[string]string{"message": "What is the current gold price?"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.ChatResponse](t, rec)
	assert.NotEmpty(t, resp.UserID)
}

func TestPurchaseRoute(t *testing.T) {
	testCases := []struct {
		name            string
		body            any
		expectedStatus  int
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Below minimum",
			body:            `{"userId":"u1","displayName":"A","email":"a@example.com","amountBaseCurrency":0.05}`,
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedCode:    domainerr.CodeBelowMinimum,
			expectedMessage: "Minimum purchase amount is 10.00 INR",
		},
		{
			name:           "Zero amount",
			body:           `{"userId":"u1","displayName":"A","email":"a@example.com","amountBaseCurrency":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeInvalidAmount,
		},
		{
			name:           "Missing user",
			body:           `{"displayName":"A","email":"a@example.com","amountBaseCurrency":10}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeInvalidUserID,
		},
		{
			name:           "Amount is not a number",
			body:           `{"userId":"u1","amountBaseCurrency":"ten"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeInvalidRequest,
		},
	}

	router := newTestRouter(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/purchase", tc.body)

			require.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())
			errResp := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tc.expectedCode, errResp.Code)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, errResp.Message)
			}
		})
	}

	// Rejected purchases persist nothing
	rec := serve(router, http.MethodGet, "/users/u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPurchaseThenQuery(t *testing.T) {
	// Arrange
	router := newTestRouter(t)

	// Act
	rec := serve(router, http.MethodPost, "/purchase", `{
		"userId": "alice",
		"displayName": "Alice",
		"email": "alice@example.com",
		"amountBaseCurrency": 5,
		"amountLocalCurrency": 1000
	}`)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	purchased := decode[dto.PurchaseResponse](t, rec)
	assert.True(t, purchased.Success)
	assert.Regexp(t, `^TXN-[0-9A-F]{8}$`, purchased.TransactionID)
	assert.InDelta(t, 0.1828, purchased.GoldWeightGrams, 1e-9)
	assert.InDelta(t, 1000.0, purchased.AmountLocal, 1e-9)
	assert.InDelta(t, 11.98, purchased.TotalCostBase, 1e-9)
	assert.InDelta(t, 30.0, purchased.TaxAmount, 1e-9)
	assert.InDelta(t, 1030.0, purchased.TotalWithTax, 1e-9)
	assert.Equal(t, "durable", purchased.Storage)
	assert.Contains(t, purchased.Message, purchased.TransactionID)

	rec = serve(router, http.MethodGet, "/users/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	userResp := decode[dto.UserRecordsResponse](t, rec)
	require.NotNil(t, userResp.Profile)
	assert.Equal(t, "Alice", userResp.Profile.DisplayName)
	require.Len(t, userResp.Transactions, 1)
	assert.Equal(t, purchased.TransactionID, userResp.Transactions[0].TransactionID)
	assert.Equal(t, "completed", userResp.Transactions[0].Status)

	rec = serve(router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.UserListResponse](t, rec)
	assert.Equal(t, 1, list.TotalUsers)
	assert.Equal(t, "alice@example.com", list.Users[0].Email)

	rec = serve(router, http.MethodGet, "/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[dto.AnalyticsResponse](t, rec)
	assert.Equal(t, 1, summary.TotalUsers)
	assert.Equal(t, 1, summary.TotalTransactions)
	assert.InDelta(t, 0.1828, summary.TotalGoldGrams, 1e-9)
	assert.InDelta(t, 11.98, summary.TotalRevenueBase, 1e-9)
	assert.InDelta(t, 11.98, summary.AverageTransactionSize, 1e-9)
}

func TestReadOnlyRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Gold price", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/gold-price", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		quote := decode[dto.GoldPriceResponse](t, rec)
		assert.InDelta(t, 65.50, quote.UnitPriceBase, 1e-9)
		assert.InDelta(t, 5469.25, quote.UnitPriceLocal, 1e-9)
		assert.Equal(t, "INR", quote.LocalCurrency)
		assert.False(t, quote.LastUpdated.IsZero())
	})

	t.Run("Empty analytics", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/analytics", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		summary := decode[dto.AnalyticsResponse](t, rec)
		assert.Zero(t, summary.TotalTransactions)
		assert.Zero(t, summary.AverageTransactionSize)
	})

	t.Run("Info", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		info := decode[dto.InfoResponse](t, rec)
		assert.Contains(t, info.Endpoints, "/purchase")
	})

	t.Run("Health", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		health := decode[dto.HealthResponse](t, rec)
		assert.Equal(t, "memory", health.Store)
		assert.Equal(t, "rules", health.Backend)
	})

	t.Run("Demo payloads", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/test/chat-examples", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		examples := decode[dto.ChatExamplesResponse](t, rec)
		assert.Len(t, examples.GoldRelatedQueries, 4)

		rec = serve(router, http.MethodGet, "/test/purchase-example", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		example := decode[dto.PurchaseExampleResponse](t, rec)
		assert.Equal(t, "user123", example.ExampleRequest.UserID)
	})

	t.Run("Unknown route", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/nope", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		errResp := decode[dto.ErrorResponse](t, rec)
		assert.Equal(t, domainerr.CodeNotFound, errResp.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupMiddlewares(router, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider(), []string{"https://app.example.com"})
	router.POST("/chat", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupMiddlewares(router, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider(), nil)
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := serve(router, http.MethodGet, "/boom", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errResp := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, domainerr.CodeUnexpected, errResp.Code)
}
