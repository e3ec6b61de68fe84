package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pmonasse/shapevision-go/cc"
	"github.com/pmonasse/shapevision-go/internal/persist"
)

var rectWidth int

// rectCmd builds a CC straight from values given on the command line,
// without going through an image file: a quick way to exercise the
// decomposition on a handful of handwritten levels.
var rectCmd = &cobra.Command{
	Use:   "rect V1 V2 ...",
	Short: "decompose a small grid of literal values",
	Long: `Decompose a grid built directly from the values V1 V2 ... given on
the command line.

Without --width, the values are laid out on 2 rows of len(values)/2 columns
(rounding up), the same convention as the original command-line rectangle
tester. With --width, they are laid out on that many columns, with enough
rows to hold them all; missing trailing cells are zero-padded.`,
	Args: cobra.MinimumNArgs(4),
	Run:  doRect,
}

func init() {
	RootCmd.AddCommand(rectCmd)
	rectCmd.Flags().IntVar(&rectWidth, "width", 0, "grid width (default: (len(values)+1)/2, 2 rows)")
}

func doRect(cmd *cobra.Command, args []string) {
	values := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		check(err)
		values[i] = float32(v)
	}

	w, h := rectWidth, 0
	if w <= 0 {
		w = (len(values) + 1) / 2
		h = 2
	} else {
		h = (len(values) + w - 1) / w
	}
	if w < 2 || h < 2 {
		check(fmt.Errorf("grid must be at least 2x2, got %dx%d", w, h))
	}

	samples := make([]float32, w*h)
	copy(samples, values)

	fmt.Printf("grid dimension: %dx%d\n", w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fmt.Printf("%g ", samples[y*w+x])
		}
		fmt.Println()
	}

	built := cc.Build(nil, samples, w, h)
	entries := persist.Summarize(built, 1)
	fmt.Printf("%d continua\n", len(entries))
	for _, e := range entries {
		fmt.Printf("contour %d: persistence %g\n", e.ContourRoot, e.Persistence)
	}
}
