package pdf

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/kozaktomas/contact-sheet/internal/constants"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/kozaktomas/contact-sheet/internal/thumb"
	"github.com/schollz/progressbar/v3"
)

// Options configures a contact sheet render.
type Options struct {
	Geometry layout.Geometry
	Grid     layout.Grid
	Order    layout.Order
	Uniform  thumb.Orientation
	Label    Label
	DPI      int  // thumbnail resolution, defaults to constants.DefaultRenderDPI
	Quality  int  // JPEG re-encode quality, defaults to constants.DefaultJPEGQuality
	Progress bool // draw a progress bar while rendering
	Logger   *log.Logger
}

// Result summarizes a finished render.
type Result struct {
	Images int
	Pages  int
}

// Render lays images out into a PDF at outPath. Images are processed one at a
// time in list order; each file is decoded, transformed in memory, drawn and
// released before the next one is opened. Any decode or draw failure aborts
// the run. The finished document is written to a uniquely named temp file
// beside outPath and renamed into place, so an aborted run never leaves a
// partial file under the target name.
func Render(ctx context.Context, images []string, outPath string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.DPI <= 0 {
		opts.DPI = constants.DefaultRenderDPI
	}
	if opts.Quality <= 0 {
		opts.Quality = constants.DefaultJPEGQuality
	}

	geo := opts.Geometry
	grid := opts.Grid
	if err := geo.CheckCells(grid); err != nil {
		return nil, err
	}
	cellW := geo.CellWidth(grid.Cols)
	cellH := geo.CellHeight(grid.Rows)

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: geo.PageW, Ht: geo.PageH},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("contact-sheet", true)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(images),
			progressbar.OptionSetDescription("Rendering thumbnails"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("images"),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	pages := layout.Paginate(len(images), grid.PerPage())
	for pageNo, page := range pages {
		logger.Debug("rendering page", "page", pageNo+1, "images", page.Len())
		doc.AddPage()
		doc.SetFont("Helvetica", "", constants.CaptionFontPt)

		for i := page.Start; i < page.End; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := placeImage(doc, tr, images[i], i-page.Start, opts, cellW, cellH); err != nil {
				return nil, err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		fmt.Println()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := save(doc, outPath); err != nil {
		return nil, err
	}
	logger.Debug("wrote document", "path", outPath, "pages", len(pages))

	return &Result{Images: len(images), Pages: len(pages)}, nil
}

// placeImage decodes one image and draws it, centered and scaled, into its
// slot on the current page, with an optional caption below the cell.
func placeImage(doc *gofpdf.Fpdf, tr func(string) string, path string, slot int, opts Options, cellW, cellH float64) error {
	img, err := thumb.Load(path)
	if err != nil {
		return err
	}
	img = thumb.Unify(img, opts.Uniform)

	b := img.Bounds()
	w, h := thumb.FitMM(b.Dx(), b.Dy(), cellW, cellH)

	buf, err := thumb.EncodeJPEG(thumb.Shrink(img, w, h, opts.DPI), opts.Quality)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	row, col := opts.Order.Cell(slot, opts.Grid.Rows, opts.Grid.Cols)
	x, y := opts.Geometry.CellOrigin(opts.Grid, row, col)

	imgOpts := gofpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader(path, imgOpts, buf)
	doc.ImageOptions(path, x+(cellW-w)/2, y+(cellH-h)/2, w, h, false, imgOpts, 0, "")

	if text := captionText(path, opts.Label); text != "" {
		doc.Text(x, y+cellH+constants.CaptionDropPt*constants.MMPerPoint, tr(removeDiacritics(text)))
	}

	if doc.Err() {
		return fmt.Errorf("failed to draw %s: %w", path, doc.Error())
	}
	return nil
}

// save writes the document under a unique temp name next to path and renames
// it into place.
func save(doc *gofpdf.Fpdf, path string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String()[:8])
	if err := doc.OutputFileAndClose(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move document to %s: %w", path, err)
	}
	return nil
}
