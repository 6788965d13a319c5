package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <algorithm>",
	Short: "Cancel and combine redundant moves in an algorithm",
	Long: `Optimize replays an algorithm one move at a time through the same
append-with-cancellation rule the search engine builds every candidate
with, collapsing same-face repeats and opposite-face commutes into
fully-reduced form.

Examples:
  cube optimize "F F'"
  cube optimize "F F B2 F"
  cube optimize "R U R' (U' R U R')"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := cubie.ParseAlgorithm(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse algorithm: %w", err)
		}

		var out cubie.Algorithm
		for _, m := range parsed.Normal {
			out = out.Append(m, false)
		}
		for _, m := range parsed.Inverse {
			out = out.Append(m, true)
		}

		fmt.Printf("input:  %s\n", parsed.String())
		fmt.Printf("moves:  %d -> %d\n", parsed.Len(), out.Len())
		fmt.Printf("output: %s\n", out.String())
		return nil
	},
}
