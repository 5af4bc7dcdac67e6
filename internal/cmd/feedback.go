package cmd

import (
	"fmt"

	"predictBot/domain"
	"predictBot/internal/bootstrap"

	"github.com/spf13/cobra"
)

var feedbackUserID int64

var feedbackCmd = &cobra.Command{
	Use:       "feedback <win|loss>",
	Short:     "Report the outcome of the last recommendation",
	Long:      "A loss makes the next prediction switch category. Only meaningful with STATE_BACKEND=redis.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.OutcomeWin), string(domain.OutcomeLoss)},
	RunE:      runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().Int64VarP(&feedbackUserID, "user", "u", 1, "User id")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeDeps, err := bootstrap.NewPredictionService(cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	st, err := svc.ReportFeedback(cmd.Context(), feedbackUserID, domain.Outcome(args[0]))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %d: category=%s pending_loss=%t\n", st.UserID, st.Category, st.PendingLoss)
	return err
}
