package layout

import (
	"fmt"

	"github.com/kozaktomas/contact-sheet/internal/constants"
)

// Geometry describes the fixed page frame thumbnails are laid into.
// All dimensions are in millimeters; the origin is the page's top-left corner.
type Geometry struct {
	PageW    float64 // full page width
	PageH    float64 // full page height
	MarginMM float64 // identical margin on all four sides
	GapMM    float64 // spacing between adjacent cells
}

// UsableWidth returns the horizontal space left after both margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageW - 2*g.MarginMM
}

// UsableHeight returns the vertical space left after both margins.
func (g Geometry) UsableHeight() float64 {
	return g.PageH - 2*g.MarginMM
}

// CellWidth returns the width of one cell when the usable width is split into
// cols columns separated by gaps.
func (g Geometry) CellWidth(cols int) float64 {
	return (g.UsableWidth() - float64(cols-1)*g.GapMM) / float64(cols)
}

// CellHeight returns the height of one cell when the usable height is split
// into rows rows separated by gaps.
func (g Geometry) CellHeight(rows int) float64 {
	return (g.UsableHeight() - float64(rows-1)*g.GapMM) / float64(rows)
}

// CellOrigin returns the top-left corner of the cell at (row, col) for the
// given grid. Row 0 is the topmost row, column 0 the leftmost column.
func (g Geometry) CellOrigin(grid Grid, row, col int) (x, y float64) {
	x = g.MarginMM + float64(col)*(g.CellWidth(grid.Cols)+g.GapMM)
	y = g.MarginMM + float64(row)*(g.CellHeight(grid.Rows)+g.GapMM)
	return x, y
}

// CheckCells rejects grids whose cells collapse to zero or negative size on
// this page frame.
func (g Geometry) CheckCells(grid Grid) error {
	cw := g.CellWidth(grid.Cols)
	ch := g.CellHeight(grid.Rows)
	if cw <= 0 || ch <= 0 {
		return fmt.Errorf(
			"grid %dx%d leaves a %.1f x %.1f mm cell on a %.0f x %.0f mm page (margin %.1f mm, gap %.1f mm)",
			grid.Rows, grid.Cols, cw, ch, g.PageW, g.PageH, g.MarginMM, g.GapMM,
		)
	}
	return nil
}

// Grid is a resolved rows/cols pair.
type Grid struct {
	Rows int
	Cols int
}

// PerPage returns the number of cells one page holds.
func (g Grid) PerPage() int {
	return g.Rows * g.Cols
}

// AutoGrid searches for the rows/cols split giving each of n images the
// largest cell area on the given page frame. Rows run from 1 to min(15, n)
// with cols = ceil(n/rows); candidates needing more than 30 columns or
// yielding a non-positive cell dimension are skipped. Ties keep the first
// candidate found, favoring fewer rows. When nothing qualifies, the
// degenerate single row (1, n) is returned; callers validate cell dimensions
// with CheckCells before rendering.
func AutoGrid(n int, geo Geometry) Grid {
	var best Grid
	bestArea := 0.0
	maxRows := min(constants.MaxAutoRows, n)
	for rows := 1; rows <= maxRows; rows++ {
		cols := ceilDiv(n, rows)
		if cols > constants.MaxAutoCols {
			continue
		}
		cw := geo.CellWidth(cols)
		ch := geo.CellHeight(rows)
		if cw <= 0 || ch <= 0 {
			continue
		}
		if area := cw * ch; area > bestArea {
			best = Grid{Rows: rows, Cols: cols}
			bestArea = area
		}
	}
	if best.Rows == 0 {
		return Grid{Rows: 1, Cols: n}
	}
	return best
}

// ExplicitGrid resolves a user-given rows/cols override for n images. A zero
// value means unset and the counterpart is derived as ceil(n/given); with
// both given the pair is used as-is, even when it under- or over-provisions
// cells. At least one of rows, cols must be positive.
func ExplicitGrid(n, rows, cols int) Grid {
	switch {
	case rows > 0 && cols > 0:
		return Grid{Rows: rows, Cols: cols}
	case rows > 0:
		return Grid{Rows: rows, Cols: ceilDiv(n, rows)}
	default:
		return Grid{Rows: ceilDiv(n, cols), Cols: cols}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
