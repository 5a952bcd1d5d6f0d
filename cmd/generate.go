package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kozaktomas/contact-sheet/internal/config"
	"github.com/kozaktomas/contact-sheet/internal/constants"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/kozaktomas/contact-sheet/internal/pdf"
	"github.com/kozaktomas/contact-sheet/internal/scan"
	"github.com/kozaktomas/contact-sheet/internal/thumb"
	"github.com/spf13/cobra"
)

// sheetParams holds the layout inputs resolved from flags and environment.
type sheetParams struct {
	geo        layout.Geometry
	rows       int
	cols       int
	order      layout.Order
	sizeName   string
	orientName string
}

// addLayoutFlags registers the flags shared by the generate and plan commands.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("page-size", "a4", "Page size from the catalog (a4, a3, letter, ...)")
	cmd.Flags().String("page-orient", "portrait", "Page orientation: portrait or landscape")
	cmd.Flags().Int("rows", 0, "Explicit grid rows (0 = automatic)")
	cmd.Flags().Int("cols", 0, "Explicit grid columns (0 = automatic)")
	cmd.Flags().Float64("margin-mm", 10.0, "Page margin in millimeters")
	cmd.Flags().Float64("gap-mm", 2.0, "Gap between cells in millimeters")
	cmd.Flags().String("order", "film-bottom-up", "Fill order: film-bottom-up or row-left-right")
}

// addGenerateFlags registers all flags of the top-level generate command.
func addGenerateFlags(cmd *cobra.Command) {
	addLayoutFlags(cmd)
	cmd.Flags().StringP("output", "o", "contact_sheet.pdf", "Output PDF path")
	cmd.Flags().String("uniform-orient", "portrait", "Force thumbnail orientation: none, portrait or landscape")
	cmd.Flags().String("labels", "none", "Caption mode: none, index or name")
	cmd.Flags().Int("dpi", constants.DefaultRenderDPI, "Thumbnail resolution in dots per inch")
	cmd.Flags().Int("jpeg-quality", constants.DefaultJPEGQuality, "JPEG quality for embedded thumbnails (1-100)")
}

// layoutParams validates the shared layout flags and resolves them into page
// geometry. Flags beat environment defaults, which beat the built-in ones.
func layoutParams(cmd *cobra.Command, cfg *config.Config) (sheetParams, error) {
	sizeName := mustGetString(cmd, "page-size")
	if !cmd.Flags().Changed("page-size") && cfg.PageSize != "" {
		sizeName = cfg.PageSize
	}
	sizeName = strings.ToLower(sizeName)
	size, ok := cfg.PageSizeByName(sizeName)
	if !ok {
		return sheetParams{}, fmt.Errorf("unknown page size %q (valid: %s)", sizeName, strings.Join(cfg.SizeNames(), ", "))
	}

	orientName := mustGetString(cmd, "page-orient")
	pageW, pageH := size.WidthMM, size.HeightMM
	switch orientName {
	case "portrait":
	case "landscape":
		pageW, pageH = pageH, pageW
	default:
		return sheetParams{}, fmt.Errorf("unknown page orientation %q (valid: portrait, landscape)", orientName)
	}

	rows := mustGetInt(cmd, "rows")
	cols := mustGetInt(cmd, "cols")
	if rows < 0 || cols < 0 {
		return sheetParams{}, fmt.Errorf("rows and cols must not be negative, got %d and %d", rows, cols)
	}

	order, err := layout.ParseOrder(mustGetString(cmd, "order"))
	if err != nil {
		return sheetParams{}, err
	}

	return sheetParams{
		geo: layout.Geometry{
			PageW:    pageW,
			PageH:    pageH,
			MarginMM: mustGetFloat64(cmd, "margin-mm"),
			GapMM:    mustGetFloat64(cmd, "gap-mm"),
		},
		rows:       rows,
		cols:       cols,
		order:      order,
		sizeName:   sizeName,
		orientName: orientName,
	}, nil
}

// resolveGrid picks the explicit grid when rows or cols were given and falls
// back to the automatic cell-area search otherwise.
func resolveGrid(p sheetParams, n int) layout.Grid {
	if p.rows > 0 || p.cols > 0 {
		return layout.ExplicitGrid(n, p.rows, p.cols)
	}
	return layout.AutoGrid(n, p.geo)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	folder := args[0]
	logger := loggerFromContext(cmd.Context())
	cfg := config.Load()

	params, err := layoutParams(cmd, cfg)
	if err != nil {
		return err
	}

	uniform, err := thumb.ParseOrientation(mustGetString(cmd, "uniform-orient"))
	if err != nil {
		return err
	}
	label, err := pdf.ParseLabel(mustGetString(cmd, "labels"))
	if err != nil {
		return err
	}

	output := mustGetString(cmd, "output")
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		output = cfg.Output
	}
	dpi := mustGetInt(cmd, "dpi")
	if !cmd.Flags().Changed("dpi") {
		dpi = cfg.RenderDPI
	}
	quality := mustGetInt(cmd, "jpeg-quality")
	if !cmd.Flags().Changed("jpeg-quality") {
		quality = cfg.JPEGQuality
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

	logger.Debug("layout resolved",
		"images", len(images),
		"rows", grid.Rows,
		"cols", grid.Cols,
		"page", params.sizeName,
		"orient", params.orientName,
		"order", params.order,
	)

	res, err := pdf.Render(cmd.Context(), images, output, pdf.Options{
		Geometry: params.geo,
		Grid:     grid,
		Order:    params.order,
		Uniform:  uniform,
		Label:    label,
		DPI:      dpi,
		Quality:  quality,
		Progress: true,
		Logger:   logger,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted")
		}
		return err
	}

	fmt.Printf("✓ Done: %s (%d images, %d pages, grid %dx%d, page %s %s, thumbs %s, margin %.1f mm, gap %.1f mm, labels %s)\n",
		output, res.Images, res.Pages, grid.Rows, grid.Cols,
		params.sizeName, params.orientName, uniform,
		params.geo.MarginMM, params.geo.GapMM, label)

	return nil
}
