package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prunplan/internal/application/planning"
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage and calculate base plans",
		Long: `Create, list, delete and calculate planetary base plans.

A plan names a planet, a set of production buildings with active recipes,
infrastructure, workforce luxuries, experts and a COGC program. Calculating
a plan derives daily material flow, workforce, area, cost, profit, ROI and
storage fill.

Examples:
  prunplan plan create --planet OT-580b --name "Rich Soil"
  prunplan plan list
  prunplan plan calc 4c8f0fc0-8461-4b17-9f93-12b68e9b8a1a --cx my-empire-cx
  prunplan plan delete 4c8f0fc0-8461-4b17-9f93-12b68e9b8a1a`,
	}

	cmd.AddCommand(newPlanCreateCommand())
	cmd.AddCommand(newPlanListCommand())
	cmd.AddCommand(newPlanCalcCommand())
	cmd.AddCommand(newPlanDeleteCommand())

	return cmd
}

func newPlanCreateCommand() *cobra.Command {
	var planetID string
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty plan for a planet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if planetID == "" {
				return fmt.Errorf("--planet flag is required")
			}

			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			draft := plan.NewDraft(planetID)
			if name != "" {
				draft.Name = name
			}

			ctx := context.Background()
			if err := env.planRepo.Save(ctx, draft); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}

			fmt.Printf("Created plan %s on %s (%s)\n", draft.Name, draft.PlanetID, draft.UUID)
			return nil
		},
	}

	cmd.Flags().StringVar(&planetID, "planet", "", "Planet natural ID (e.g. OT-580b)")
	cmd.Flags().StringVar(&name, "name", "", "Plan name")

	return cmd
}

func newPlanListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			drafts, err := env.planRepo.ListAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}

			if len(drafts) == 0 {
				fmt.Println("No plans saved")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "UUID\tNAME\tPLANET\tBUILDINGS\tCOGC")
			for _, d := range drafts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					d.UUID, d.Name, d.PlanetID, len(d.Buildings), d.COGC)
			}
			return w.Flush()
		},
	}
}

func newPlanCalcCommand() *cobra.Command {
	var cxID string

	cmd := &cobra.Command{
		Use:   "calc <plan-uuid>",
		Short: "Calculate a plan",
		Long: `Calculate a saved plan against the current reference data cache.

Stale reference data is refreshed first. Prices resolve through the selected
commodity exchange preference, falling back to the 30-day universe average.

Examples:
  prunplan plan calc 4c8f0fc0-8461-4b17-9f93-12b68e9b8a1a
  prunplan plan calc 4c8f0fc0-8461-4b17-9f93-12b68e9b8a1a --cx my-empire-cx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			ctx := context.Background()

			draft, err := env.planRepo.FindByUUID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
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

			calc := planning.NewCalculation(draft, store, cxs, cxID)
			result, err := calc.Result(ctx)
			if err != nil {
				return fmt.Errorf("failed to calculate plan: %w", err)
			}

			printResult(draft, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cxID, "cx", "", "Commodity exchange preference UUID")

	return cmd
}

func newPlanDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-uuid>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(configPath(cmd))
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.planRepo.Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete plan: %w", err)
			}

			fmt.Printf("Deleted plan %s\n", args[0])
			return nil
		},
	}
}

func printResult(draft *plan.Draft, result *planning.Result) {
	fmt.Printf("\n=== %s on %s ===\n\n", draft.Name, draft.PlanetID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BUILDING\tAMOUNT\tEFFICIENCY")
	for _, b := range result.Production.Buildings {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", b.Name, b.Amount, b.Efficiency*100)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WORKFORCE\tREQUIRED\tCAPACITY\tEFFICIENCY")
	for _, tier := range gamedata.WorkforceTypes {
		wf := result.Workforce[tier]
		if wf.Required == 0 && wf.Capacity == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", tier, wf.Required, wf.Capacity, wf.Efficiency*100)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tINPUT/d\tOUTPUT/d\tDELTA/d\tVALUE/d")
	for _, m := range result.MaterialIO {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%+.2f\t%.2f\n", m.Ticker, m.Input, m.Output, m.Delta, m.Price)
	}
	w.Flush()

	fmt.Printf("\nArea: %d / %d used (%d left, %d permits)\n",
		result.Area.AreaUsed, result.Area.AreaTotal, result.Area.AreaLeft, result.Area.Permits)
	fmt.Printf("Storage filled: %.1f%%\n", result.Visitation.StorageFilled)
	fmt.Printf("Construction cost: %.2f\n", result.Overview.ConstructionCost)
	fmt.Printf("Daily cost: %.2f\n", result.Overview.DailyCost)
	fmt.Printf("Daily profit: %.2f\n", result.Overview.DailyProfit)
	if math.IsInf(result.Overview.ROI, 1) {
		fmt.Println("ROI: never (non-positive profit)")
	} else {
		fmt.Printf("ROI: %.1f days\n", result.Overview.ROI)
	}
}
