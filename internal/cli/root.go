package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "An FMC (fewest moves) assistance engine",
	Long: `Cube helps with Fewest Moves Challenge solving: it classifies a cube
against the EO/DR/HTR/FR/Slice/Finish milestones, searches for short
algorithms between them, generates scrambles, and serves the same
operations over HTTP.`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(cfenCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
}
