package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/analytics"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/usecase/record"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/bootstrap"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize purchases in the configured store",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	stores, err := bootstrap.OpenStores(ctx, cfg, log, timeProvider.NewRealTimeProvider())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := stores.Close(); closeErr != nil {
			log.Error("Failed to close record store", map[string]any{"error": closeErr.Error()})
		}
	}()

	queries := record.NewQueryService(log, stores.Primary)
	summary, err := analytics.NewAggregator(queries).Summarize(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize purchases: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store:               %s\n", stores.Primary.Name())
	fmt.Fprintf(out, "Users:               %d\n", summary.TotalUsers)
	fmt.Fprintf(out, "Transactions:        %d\n", summary.TotalTransactions)
	fmt.Fprintf(out, "Gold sold:           %s g\n", entity.FormatWeight(summary.TotalGoldGrams))
	fmt.Fprintf(out, "Revenue (base):      %s %s\n", entity.FormatMoney(summary.TotalRevenueBase), cfg.Pricing.BaseCurrency)
	fmt.Fprintf(out, "Revenue (local):     %s %s\n", entity.FormatMoney(summary.TotalRevenueLocal), cfg.Pricing.LocalCurrency)
	fmt.Fprintf(out, "Average transaction: %s %s\n", entity.FormatMoney(summary.AverageTransactionSize), cfg.Pricing.BaseCurrency)
	return nil
}
