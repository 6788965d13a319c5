package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

var edgeSlotNames = [12]string{"UR", "UF", "UL", "UB", "FR", "FL", "BL", "BR", "DR", "DF", "DL", "DB"}
var cornerSlotNames = [8]string{"UFR", "UFL", "ULB", "UBR", "DFR", "DFL", "DLB", "DBR"}

var showCmd = &cobra.Command{
	Use:   "show <kind> <variant> [scramble]",
	Short: "Render per-facelet visibility flags for a stage",
	Long: `Show applies a scramble and prints, piece by piece, the visibility
flags a stage classifier assigns: ANY, BAD_FACE, BAD_PIECE, HTR_D and
TOP_COLOR, the same bits a UI would use to dim or highlight stickers.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := stage.ParseKind(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", stage.ErrInvalidStage, args[0])
		}
		axis, ok := cubie.ParseAxis(args[1])
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

		fmt.Println("edges:")
		for pos := 0; pos < 12; pos++ {
			fmt.Printf("  %-2s (id %d): facelet0=%s facelet1=%s\n", edgeSlotNames[pos], c.Edges[pos].ID,
				visibilityString(cls.EdgeVisibility(c, pos, 0)), visibilityString(cls.EdgeVisibility(c, pos, 1)))
		}
		fmt.Println("corners:")
		for pos := 0; pos < 8; pos++ {
			fmt.Printf("  %-3s (id %d): facelet0=%s facelet1=%s facelet2=%s\n", cornerSlotNames[pos], c.Corners[pos].ID,
				visibilityString(cls.CornerVisibility(c, pos, 0)), visibilityString(cls.CornerVisibility(c, pos, 1)), visibilityString(cls.CornerVisibility(c, pos, 2)))
		}
		return nil
	},
}

func visibilityString(v cubie.Visibility) string {
	if v == 0 || v == cubie.VisibilityAny {
		return "any"
	}
	var flags []string
	for _, f := range []struct {
		bit  cubie.Visibility
		name string
	}{
		{cubie.VisibilityBadFace, "bad_face"},
		{cubie.VisibilityBadPiece, "bad_piece"},
		{cubie.VisibilityHTRD, "htr_d"},
		{cubie.VisibilityTopColor, "top_color"},
	} {
		if v.Has(f.bit) {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return "any"
	}
	out := flags[0]
	for _, f := range flags[1:] {
		out += "|" + f
	}
	return out
}
