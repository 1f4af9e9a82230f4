package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRefreshCommand creates the refresh command
func NewRefreshCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the local reference data cache",
		Long: `Reload materials, buildings, recipes, exchanges and cached planets
from the FIO API. By default only entities past their staleness threshold
are reloaded; --force reloads everything.

Examples:
  prunplan refresh
  prunplan refresh --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			ctx := context.Background()
			svc := env.refreshService()

			if force {
				if err := svc.ForceRefresh(ctx); err != nil {
					return fmt.Errorf("failed to refresh game data: %w", err)
				}
			} else {
				if err := svc.RefreshStale(ctx); err != nil {
					return fmt.Errorf("failed to refresh game data: %w", err)
				}
			}

			fmt.Println("Reference data is up to date")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reload all entities regardless of staleness")

	return cmd
}
