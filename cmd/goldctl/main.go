// Package main contains the goldctl commands for checking pricing, intent
// rules and stored purchases without running the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goldctl",
		Short: "Offline checks for the gold advisor service",
		Long: `goldctl loads the same configuration as the API server and runs
single operations against it: price a purchase, classify a chat message,
or summarize stored purchases.`,
		SilenceUsage:      true,
		PersistentPreRunE: applyEnvironment,
	}

	root.PersistentFlags().String("env", "", "configuration profile (development, test, production); defaults to GA_ENV")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("goldctl.env", root.PersistentFlags().Lookup("env"))
	_ = viper.BindPFlag("goldctl.log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(quoteCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(summaryCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyEnvironment makes --env win over GA_ENV before the config is read
func applyEnvironment(_ *cobra.Command, _ []string) error {
	if env := viper.GetString("goldctl.env"); env != "" {
		if err := os.Setenv("GA_ENV", env); err != nil {
			return fmt.Errorf("failed to select environment: %w", err)
		}
	}
	return nil
}

// loadRuntime reads the service configuration and builds a console logger
func loadRuntime() (*config.Config, core.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewZapLogger(logger.Options{
		Level:  viper.GetString("goldctl.log_level"),
		Format: "console",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}
