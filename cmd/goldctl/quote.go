package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/bootstrap"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show the gold price and price a purchase",
		Long: `Show the configured gold price. With --local or --base, also show
the weight, tax and total a purchase of that amount would get. Nothing is stored.

Examples:
  goldctl quote
  goldctl quote --local 1000
  goldctl quote --base 100`,
		Args: cobra.NoArgs,
		RunE: runQuote,
	}

	cmd.Flags().String("local", "", "purchase amount in the local currency")
	cmd.Flags().String("base", "", "purchase amount in the base currency")
	cmd.MarkFlagsMutuallyExclusive("local", "base")

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	oracle, err := bootstrap.NewOracle(cfg.Pricing, timeProvider.NewRealTimeProvider())
	if err != nil {
		return err
	}
	quote := oracle.Quote()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Unit price:      %s %s/g\n", entity.FormatMoney(quote.UnitPriceBase), quote.BaseCurrency)
	fmt.Fprintf(out, "Unit price:      %s %s/g\n", entity.FormatMoney(quote.UnitPriceLocal), quote.LocalCurrency)
	fmt.Fprintf(out, "Conversion rate: %s\n", quote.ConversionRate.String())

	amountLocal, ok, err := purchaseAmount(cmd, quote)
	if err != nil || !ok {
		return err
	}

	settings := bootstrap.PurchaseSettings(cfg.Pricing)
	if !amountLocal.IsPositive() || amountLocal.LessThan(settings.MinimumLocal) {
		fmt.Fprintf(out, "Amount %s %s is below the minimum of %s %s\n",
			entity.FormatMoney(amountLocal), quote.LocalCurrency,
			entity.FormatMoney(settings.MinimumLocal), quote.LocalCurrency)
		return nil
	}

	tax := amountLocal.Mul(settings.TaxRate)
	fmt.Fprintf(out, "Gold weight:     %s g\n", entity.FormatWeight(entity.RoundWeight(quote.GramsFor(amountLocal))))
	fmt.Fprintf(out, "Tax:             %s %s\n", entity.FormatMoney(tax), quote.LocalCurrency)
	fmt.Fprintf(out, "Total:           %s %s\n", entity.FormatMoney(amountLocal.Add(tax)), quote.LocalCurrency)
	return nil
}

// purchaseAmount returns the requested amount in the local currency, if any
func purchaseAmount(cmd *cobra.Command, quote entity.PriceQuote) (decimal.Decimal, bool, error) {
	if raw, _ := cmd.Flags().GetString("local"); raw != "" {
		amount, err := entity.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("invalid --local amount: %w", err)
		}
		return amount, true, nil
	}

	if raw, _ := cmd.Flags().GetString("base"); raw != "" {
		amount, err := entity.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("invalid --base amount: %w", err)
		}
		return quote.ToLocal(amount), true, nil
	}

	return decimal.Zero, false, nil
}
