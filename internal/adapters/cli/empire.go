package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prunplan/internal/application/planning"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
)

// NewEmpireCommand creates the empire command with subcommands
func NewEmpireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empire",
		Short: "Aggregate plans into an empire-wide view",
		Long: `Aggregate every saved plan into one empire-wide material balance.

Each material shows total daily input, output, delta and the value of the
delta at the value-weighted mean unit price over the contributing plans.

Examples:
  prunplan empire balance
  prunplan empire balance --cx my-empire-cx`,
	}

	cmd.AddCommand(newEmpireBalanceCommand())

	return cmd
}

func newEmpireBalanceCommand() *cobra.Command {
	var cxID string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the empire-wide material balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			ctx := context.Background()

			drafts, err := env.planRepo.ListAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}
			if len(drafts) == 0 {
				fmt.Println("No plans saved")
				return nil
			}

			if err := env.refreshService().RefreshStale(ctx); err != nil {
				return fmt.Errorf("failed to refresh game data: %w", err)
			}

			store := env.store()
			if err := store.Load(ctx); err != nil {
				return fmt.Errorf("failed to load game data: %w", err)
			}

			cxs, err := env.cxRepo.LoadAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to load exchange preferences: %w", err)
			}

			entries, err := planning.NewEmpireService(store, cxs).Balance(ctx, drafts, cxID)
			if err != nil {
				return fmt.Errorf("failed to compute empire balance: %w", err)
			}

			printEmpireBalance(entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&cxID, "cx", "", "Commodity exchange preference UUID")

	return cmd
}

func printEmpireBalance(entries []materialio.EmpireEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tINPUT/d\tOUTPUT/d\tDELTA/d\tVALUE/d\tCONSUMERS\tPRODUCERS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%+.2f\t%.2f\t%s\t%s\n",
			e.Ticker, e.Input, e.Output, e.Delta, e.DeltaPrice,
			planetList(e.InputPlanets), planetList(e.OutputPlanets))
	}
	w.Flush()
}

func planetList(planets []materialio.EmpirePlanet) string {
	if len(planets) == 0 {
		return "-"
	}
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = p.PlanetID
	}
	return strings.Join(names, ",")
}
