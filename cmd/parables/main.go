// Command parables browses the parable catalog and talks to the model from
// a terminal.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/config"
	"github.com/parables-of-the-word-api/internal/services"
	"github.com/parables-of-the-word-api/pkg/llm"
	"github.com/parables-of-the-word-api/pkg/logging"
)

var (
	logger   = zap.NewNop()
	parables = catalog.Default()

	// newModel is replaced in tests
	newModel = func(ctx context.Context) (llm.Model, error) {
		return llm.New(ctx, config.GetConfig().LLMConfig())
	}
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "parables",
		Short:        "Explore the parables of Jesus",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, "console")
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newListCmd(),
		newGospelsCmd(),
		newShowCmd(),
		newInsightsCmd(),
		newChatCmd(),
	)
	return root
}

func retryPolicy() services.RetryPolicy {
	cfg := config.GetConfig()
	retry := services.DefaultRetryPolicy()
	retry.Timeout = cfg.RequestTimeout
	retry.MaxRetries = cfg.MaxRetries
	return retry
}
