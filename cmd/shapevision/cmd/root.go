package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "shapevision",
	Short: "decompose scalar grids into contours and continua",
	Long: `shapevision builds the Contours & Continua decomposition of a
bilinearly interpolated 2D scalar grid:
	- load a grid from a PNG image or from raw values on the command line,
	- run the divide-and-conquer decomposition,
	- print the resulting persistence summary.`,
}

// Execute adds all child commands to RootCmd and runs it. This is called by
// main.main(); it only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
