package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"predictBot/internal/bootstrap"

	"github.com/spf13/cobra"
)

var (
	predictUserID  int64
	predictHistory []int
	predictJSON    bool
)

var predictCmd = &cobra.Command{
	Use:   "predict <number>",
	Short: "Predict from the last drawn number (0-9)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().Int64VarP(&predictUserID, "user", "u", 1, "User id whose category state is used")
	predictCmd.Flags().IntSliceVar(&predictHistory, "history", nil, "Recent draws, oldest first (e.g. 5,8,8,9,3)")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Print the raw result as JSON")
}

func runPredict(cmd *cobra.Command, args []string) error {
	last, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: predict <number> (0-9): %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeDeps, err := bootstrap.NewPredictionService(cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	result, err := svc.Predict(cmd.Context(), predictUserID, last, predictHistory)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if predictJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, err = fmt.Fprint(out, renderPrediction(result))
	return err
}
