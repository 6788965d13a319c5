package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cfen"
	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/scramble"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random-state FMC scramble",
	Long: `Generate produces a scramble by solving a random cube through the
EO/DR/HTR/Finish chain and inverting the result, so the printed move
sequence always starts from a solved cube and lands on a legal
random-state position.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputCFEN, _ := cmd.Flags().GetBool("cfen")

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		alg, err := scramble.Generate(rng)
		if err != nil {
			return fmt.Errorf("failed to generate scramble: %w", err)
		}

		fmt.Println(alg.String())

		if outputCFEN {
			c := cubie.Solved()
			c.ApplyAlgorithm(alg)
			fmt.Println(cfen.String(c))
		}
		return nil
	},
}

func init() {
	scrambleCmd.Flags().Bool("cfen", false, "Also print the resulting cube state as CFEN")
}
