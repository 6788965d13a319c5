package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/pipeline"
	"github.com/behrlich/fmc-cube/internal/search"
	"github.com/behrlich/fmc-cube/internal/stage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <kind> <variant> <scramble>",
	Short: "Search for algorithms reaching one FMC milestone",
	Long: `Solve runs the IDA*-style search engine against a scramble for the
requested (kind, variant) stage, printing up to --count algorithms in
non-decreasing length order with no two sharing a case identity.

Examples:
  cube solve eo ud "R U F"
  cube solve dr ud "R U2 F' L D" --count 3 --niss always
  cube solve finish "" "U' F2 U2 L2 U' R2 U F2 L2 R' U' F"`,
	Args: cobra.ExactArgs(3),
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
		moves, err := cubie.ParseMoves(args[2])
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}

		count, _ := cmd.Flags().GetInt("count")
		nissFlag, _ := cmd.Flags().GetString("niss")
		canonical, _ := cmd.Flags().GetBool("canonical")
		dedup, _ := cmd.Flags().GetBool("dedup")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		c := cubie.FromMoves(moves)
		prepared, prereq, err := pipeline.Drive(c, kind, axis)
		if err != nil {
			return fmt.Errorf("solving prerequisites: %w", err)
		}
		cls := stage.For(kind, axis)

		algs, err := search.Find(prepared, cls, count, search.Options{
			MaxDepth:         maxDepth,
			Niss:             parseNissFlag(nissFlag),
			RequireCanonical: canonical,
			DedupCases:       dedup,
			Bound:            search.BoundFor(kind, axis),
		})
		if err != nil {
			return err
		}

		for _, a := range algs {
			fmt.Println(prereq.Merge(a).String())
		}
		return nil
	},
}

func parseNissFlag(s string) search.NissPolicy {
	switch s {
	case "before":
		return search.NissBefore
	case "always":
		return search.NissAlways
	default:
		return search.NissNever
	}
}

func init() {
	solveCmd.Flags().IntP("count", "n", 1, "Number of solutions to find")
	solveCmd.Flags().String("niss", "never", "NISS policy: never, before, always")
	solveCmd.Flags().Bool("canonical", true, "Only emit canonical-form algorithms")
	solveCmd.Flags().Bool("dedup", true, "Deduplicate solutions by case identity")
	solveCmd.Flags().Int("max-depth", 12, "Maximum algorithm length to search")
}
