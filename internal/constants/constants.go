// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Unit conversion constants
const (
	// MMPerInch converts between millimeters and inches for DPI math
	MMPerInch = 25.4

	// MMPerPoint converts PostScript points (1/72 inch) to millimeters
	MMPerPoint = MMPerInch / 72.0
)

// Grid search constants
const (
	// MaxAutoRows is the upper bound on row candidates in the automatic grid search
	MaxAutoRows = 15

	// MaxAutoCols is the upper bound on derived column counts in the automatic
	// grid search; candidates above it are skipped, not clamped
	MaxAutoCols = 30
)

// Rendering constants
const (
	// DefaultRenderDPI is the resolution thumbnails are resampled to before embedding
	DefaultRenderDPI = 150

	// DefaultJPEGQuality is the quality used when re-encoding thumbnails for embedding
	DefaultJPEGQuality = 85

	// CaptionFontPt is the caption font size in points (Helvetica)
	CaptionFontPt = 7.0

	// CaptionDropPt is how far the caption baseline sits below the cell's
	// bottom edge, in points
	CaptionDropPt = 2.0
)
