package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/kozaktomas/contact-sheet/internal/config"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/kozaktomas/contact-sheet/internal/scan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <folder>",
	Short: "Preview the grid layout without rendering a PDF",
	Long: `Plan scans a folder and reports the grid, cell size and page count the
generator would use, without decoding a single image.

Examples:
  # Inspect the automatic grid for a folder
  contact-sheet plan ./scans

  # Preview an explicit layout and list the files placed on each page
  contact-sheet plan --rows 4 --cols 6 --files ./scans`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	addLayoutFlags(planCmd)
	planCmd.Flags().Bool("files", false, "List the files placed on each page")
}

func runPlan(cmd *cobra.Command, args []string) error {
	folder := args[0]
	cfg := config.Load()

	params, err := layoutParams(cmd, cfg)
	if err != nil {
		return err
	}

	images, err := scan.Images(folder)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("no supported images found in %s (%s)", folder, strings.Join(scan.Extensions(), ", "))
	}

	grid := resolveGrid(params, len(images))
	if err := params.geo.CheckCells(grid); err != nil {
		return err
	}

	mode := "automatic"
	if params.rows > 0 || params.cols > 0 {
		mode = "explicit"
	}
	spans := layout.Paginate(len(images), grid.PerPage())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Images:\t%d\n", len(images))
	fmt.Fprintf(w, "Page:\t%s %s (%.0f x %.0f mm)\n", params.sizeName, params.orientName, params.geo.PageW, params.geo.PageH)
	fmt.Fprintf(w, "Grid:\t%dx%d (%s, %d per page)\n", grid.Rows, grid.Cols, mode, grid.PerPage())
	fmt.Fprintf(w, "Cell:\t%.1f x %.1f mm\n", params.geo.CellWidth(grid.Cols), params.geo.CellHeight(grid.Rows))
	fmt.Fprintf(w, "Order:\t%s\n", params.order)
	fmt.Fprintf(w, "Pages:\t%d\n", len(spans))
	w.Flush()

	if mustGetBool(cmd, "files") {
		for i, span := range spans {
			fmt.Printf("\nPage %d (%d files):\n", i+1, span.Len())
			for _, path := range images[span.Start:span.End] {
				fmt.Printf("  %s\n", filepath.Base(path))
			}
		}
	}

	return nil
}
