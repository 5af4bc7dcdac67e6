package cmd

import (
	"fmt"
	"text/tabwriter"

	"predictBot/domain"
	"predictBot/internal/bootstrap"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch and print the current frequency/missing statistics",
	Args:  cobra.NoArgs,
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := bootstrap.NewSignalRepository(cfg).FetchSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tFREQUENCY\tMISSING")
	for v := domain.MinCandidate; v <= domain.MaxCandidate; v++ {
		st := snap.Stat(v)
		fmt.Fprintf(w, "%d\t%d\t%d\n", v, st.Frequency, st.Missing)
	}
	return w.Flush()
}
