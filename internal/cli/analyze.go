package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scramble]",
	Short: "Report milestone progress for a scrambled cube",
	Long: `Analyze walks a scramble through every stage in the EO/DR/HTR chain
on all three axes and reports which ones are already eligible or solved,
the same milestone survey an FMC solver runs by hand before committing
to an axis.

Examples:
  cube analyze ""
  cube analyze "R U R' U'"
  cube analyze "R U F B2 L2 D R' F' U2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scrambleStr := ""
		if len(args) > 0 {
			scrambleStr = args[0]
		}
		moves, err := cubie.ParseMoves(scrambleStr)
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}
		c := cubie.FromMoves(moves)

		if scrambleStr != "" {
			fmt.Printf("Analyzing cube after scramble: %s\n\n", scrambleStr)
		} else {
			fmt.Println("Analyzing solved cube:")
		}

		kinds := []stage.Kind{stage.EO, stage.DR, stage.HTR, stage.FR, stage.Slice}
		axes := []cubie.Axis{cubie.AxisUD, cubie.AxisFB, cubie.AxisRL}
		for _, kind := range kinds {
			for _, axis := range axes {
				cls := stage.For(kind, axis)
				status := "not eligible"
				if cls.IsEligible(c) {
					if cls.IsSolved(c) {
						status = "solved"
					} else {
						status = fmt.Sprintf("eligible, case %s", cls.CaseName(c))
					}
				}
				fmt.Printf("  %-7s %-3s %s\n", kind, axis, status)
			}
		}

		finish := stage.For(stage.Finish, cubie.AxisUD)
		fmt.Printf("  %-7s %-3s ", stage.Finish, "-")
		if finish.IsSolved(c) {
			fmt.Println("solved")
		} else if finish.IsEligible(c) {
			fmt.Printf("eligible, case %s\n", finish.CaseName(c))
		} else {
			fmt.Println("not eligible")
		}
		return nil
	},
}
