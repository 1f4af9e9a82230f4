package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the prunplan command tree
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prunplan",
		Short: "Base planning for a space colony economy",
		Long: `prunplan computes material flows, workforce demand, area usage,
construction cost, daily cost, ROI and storage fill for planetary base
plans, and aggregates many plans into an empire-wide material balance.

Reference data comes from the FIO REST API and is cached locally with a
per-entity staleness policy.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: search ./config.yaml)")

	cmd.AddCommand(NewRefreshCommand())
	cmd.AddCommand(NewPlanCommand())
	cmd.AddCommand(NewEmpireCommand())

	return cmd
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return path
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
