package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmonasse/shapevision-go/cc"
	"github.com/pmonasse/shapevision-go/internal/grayimage"
	"github.com/pmonasse/shapevision-go/internal/persist"
)

var buildCfgVal string

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build IMAGE.png",
	Short: "decompose a grayscale PNG image",
	Long: `Decompose the grid of sample values read from IMAGE.png into its
contours and continua, then print a persistence summary ordered from the
most to the least persistent continuum.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildCfgVal, "config", "", "build settings (YAML, optional)")
}

func doBuild(cmd *cobra.Command, args []string) {
	settings := DefaultSettings()
	if buildCfgVal != "" {
		check(unmarshalYAMLFile(buildCfgVal, &settings))
	}

	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	grid, err := grayimage.Decode(f)
	check(err)

	ctx := cc.NewBuildContext(settings.EnableLog || settings.EnableTimer)
	ctx.EnableLog(settings.EnableLog)
	ctx.EnableTimer(settings.EnableTimer)

	built := cc.Build(ctx, grid.Samples, grid.W, grid.H)

	if settings.EnableLog {
		ctx.DumpLog("build log (%s)", args[0])
	}
	if settings.EnableTimer {
		fmt.Printf("total: %s\n", ctx.AccumulatedTime(cc.TimerTotal))
	}

	entries := persist.Summarize(built, settings.MaxPersistence)
	fmt.Printf("%d continua\n", len(entries))
	for _, e := range entries {
		fmt.Printf("contour %d: persistence %g\n", e.ContourRoot, e.Persistence)
	}
}
