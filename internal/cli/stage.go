package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

var stageCmd = &cobra.Command{
	Use:   "stage <kind> <variant> [scramble]",
	Short: "Classify a cube against one FMC milestone",
	Long: `Stage reports whether the milestone already holds, whether the
predecessor subgroup is reached, and the short case-name label used to
index known cases.

Examples:
  cube stage eo ud "R U F"
  cube stage dr fb "R U F B2 L2"
  cube stage finish "" ""`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := stage.ParseKind(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", stage.ErrInvalidStage, args[0])
		}
		axis, ok := cubie.ParseAxis(args[1])
		if !ok && args[1] == "" && (kind == stage.Finish || kind == stage.Scrambled || kind == stage.Insertions) {
			axis, ok = cubie.AxisUD, true
		}
		if !ok {
			return fmt.Errorf("%w: variant %q", stage.ErrInvalidStage, args[1])
		}
		scrambleStr := ""
		if len(args) == 3 {
			scrambleStr = args[2]
		}
		moves, err := cubie.ParseMoves(scrambleStr)
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}

		c := cubie.FromMoves(moves)
		cls := stage.For(kind, axis)

		fmt.Printf("kind:       %s\n", cls.Kind())
		fmt.Printf("variant:    %s\n", cls.Axis())
		fmt.Printf("is_solved:  %t\n", cls.IsSolved(c))
		fmt.Printf("eligible:   %t\n", cls.IsEligible(c))
		fmt.Printf("case_name:  %s\n", cls.CaseName(c))
		return nil
	},
}
