package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/analytics"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/chat"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Record stores: the configured backend, or memory when it is unreachable
	stores, err := bootstrap.OpenStores(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open record store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	oracle, err := bootstrap.NewOracle(cfg.Pricing, tp)
	if err != nil {
		appLogger.Error("Invalid pricing configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Text backend is optional; nil means rules only
	backend := bootstrap.NewTextBackend(ctx, cfg.LLM, appLogger)

	// Initialize use cases
	classifier := bootstrap.NewIntentClassifier(backend, cfg.LLM, tp, appLogger)
	generator := bootstrap.NewResponseGenerator(backend, oracle, cfg.LLM, tp, appLogger)
	chatService := chat.NewChatService(classifier, generator, appLogger)
	purchaseService := purchase.NewPurchaseService(
		oracle,
		stores.Primary,
		stores.Fallback,
		bootstrap.PurchaseSettings(cfg.Pricing),
		tp,
		appLogger,
	)
	queryService := record.NewQueryService(appLogger, stores.Primary, stores.Fallback)
	aggregator := analytics.NewAggregator(queryService)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Chat:     handler.NewChatHandler(chatService, appLogger),
		Purchase: handler.NewPurchaseHandler(purchaseService, appLogger),
		Records:  handler.NewRecordHandler(queryService, appLogger),
		Market:   handler.NewMarketHandler(oracle, aggregator, tp, appLogger),
		System:   handler.NewSystemHandler(stores.Primary.Name(), bootstrap.BackendName(backend)),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"store":    stores.Primary.Name(),
			"degraded": stores.Degraded(),
			"backend":  bootstrap.BackendName(backend),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// The database goes last so in-flight purchases can finish
	if err := stores.Close(); err != nil {
		appLogger.Error("Failed to close record store", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
