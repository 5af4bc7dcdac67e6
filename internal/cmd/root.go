package cmd

import (
	"os"

	"predictBot/pkg/config"
	"predictBot/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "predict-bot",
	Short: "Draw prediction engine from the command line",
	Long: `predict-bot fetches the current draw statistics, scores the candidate
numbers 0-9 and prints a ranked shortlist plus a BIG/SMALL recommendation.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment. Logs go to stderr so stdout stays clean.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.InitWithWriter(cfg.App.Environment, os.Stderr)
	return cfg, nil
}
