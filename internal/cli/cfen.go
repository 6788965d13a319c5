package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cfen"
	"github.com/behrlich/fmc-cube/internal/cubie"
)

var cfenCmd = &cobra.Command{
	Use:   "cfen <scramble>",
	Short: "Encode a scramble as a CFEN string",
	Long: `Cfen applies a scramble to a solved cube and prints the resulting
state as a CFEN string (corners/edges), the serialization the web API
accepts as the "cfen" field of a JSON request body in place of a scramble.

Examples:
  cube cfen ""
  cube cfen "R U R' U'"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := cubie.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}
		c := cubie.FromMoves(moves)
		fmt.Println(cfen.String(c))
		return nil
	},
}

var cfenDecodeCmd = &cobra.Command{
	Use:   "decode <cfen>",
	Short: "Decode a CFEN string and report whether it is solved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfen.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("is_solved: %t\n", c.IsSolved())
		return nil
	},
}

func init() {
	cfenCmd.AddCommand(cfenDecodeCmd)
}
