package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/gateway"
	timeProvider "github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/bootstrap"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify MESSAGE",
		Short: "Classify a chat message and show the reply",
		Long: `Run a chat message through the intent classifier and the reply
generator. The keyword rules are used unless --backend is given, in which case
the configured text backend answers first.

Examples:
  goldctl classify "Should I invest in gold?"
  goldctl classify --backend "Is a golden retriever a good pet?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Bool("backend", false, "ask the configured text backend first")
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	message := strings.Join(args, " ")

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	tp := timeProvider.NewRealTimeProvider()

	oracle, err := bootstrap.NewOracle(cfg.Pricing, tp)
	if err != nil {
		return err
	}

	var backend gateway.TextBackend
	if useBackend, _ := cmd.Flags().GetBool("backend"); useBackend {
		backend = bootstrap.NewTextBackend(ctx, cfg.LLM, log)
	}

	classifier := bootstrap.NewIntentClassifier(backend, cfg.LLM, tp, log)
	generator := bootstrap.NewResponseGenerator(backend, oracle, cfg.LLM, tp, log)

	out := cmd.OutOrStdout()
	if classifier.IsPurchaseConsent(message) {
		fmt.Fprintln(out, "Purchase consent: yes")
	}

	verdict := classifier.IsGoldRelated(ctx, message)
	fmt.Fprintf(out, "Gold related:     %t (%s)\n", verdict.GoldRelated, verdict.Source)
	if verdict.BackendErr != nil {
		fmt.Fprintf(out, "Backend error:    %v\n", verdict.BackendErr)
	}

	reply := generator.Generate(ctx, message, verdict.GoldRelated)
	fmt.Fprintf(out, "Reply (%s):\n%s\n", reply.Source, reply.Text)
	return nil
}
