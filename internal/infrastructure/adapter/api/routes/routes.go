package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Chat     *handler.ChatHandler
	Purchase *handler.PurchaseHandler
	Records  *handler.RecordHandler
	Market   *handler.MarketHandler
	System   *handler.SystemHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.System.Info)
	router.GET("/health", h.System.Health)

	router.POST("/chat", h.Chat.Chat)
	router.POST("/purchase", h.Purchase.Purchase)

	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", h.Records.ListUsers)
		userRoutes.GET("/:userId", h.Records.GetUser)
	}

	router.GET("/gold-price", h.Market.GoldPrice)
	router.GET("/analytics", h.Market.Analytics)

	demoRoutes := router.Group("/test")
	{
		demoRoutes.GET("/chat-examples", h.System.ChatExamples)
		demoRoutes.GET("/purchase-example", h.System.PurchaseExample)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// Recovery first so it also covers the other middlewares
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
