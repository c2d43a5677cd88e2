package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/profile-scout/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "profile-scout",
	Short: "Quota-driven profile collection from web search providers",
	Long:  "Sweeps a search provider with category-specific keyword variants, deduplicates results, and appends them to CSV and the run store until per-category quotas are met.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
