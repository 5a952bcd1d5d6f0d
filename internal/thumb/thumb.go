package thumb

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	"github.com/disintegration/imaging"
	"github.com/kozaktomas/contact-sheet/internal/constants"

	// webp is not part of imaging's native format set; registering the decoder
	// lets the shared image.Decode path handle it.
	_ "golang.org/x/image/webp"
)

// Orientation is the forced thumbnail orientation applied after decoding.
type Orientation int

const (
	// OrientPortrait rotates images that are wider than tall by 90° counter-clockwise. The default.
	OrientPortrait Orientation = iota
	// OrientLandscape rotates images that are taller than wide by 90° clockwise.
	OrientLandscape
	// OrientNone keeps every image as decoded.
	OrientNone
)

// ParseOrientation maps a CLI orientation name to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return OrientPortrait, nil
	case "landscape":
		return OrientLandscape, nil
	case "none":
		return OrientNone, nil
	}
	return OrientNone, fmt.Errorf("unknown orientation %q (valid: none, portrait, landscape)", s)
}

func (o Orientation) String() string {
	switch o {
	case OrientPortrait:
		return "portrait"
	case OrientLandscape:
		return "landscape"
	case OrientNone:
		return "none"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Load decodes the image at path with any readable EXIF orientation already
// applied. Files without EXIF data, or formats that carry none, decode with
// their stored orientation unchanged.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Unify rotates img by 90° when its aspect disagrees with the forced
// orientation. Square images never rotate. The input is not modified.
func Unify(img image.Image, o Orientation) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	switch o {
	case OrientPortrait:
		if w > h {
			return imaging.Rotate90(img)
		}
	case OrientLandscape:
		if h > w {
			return imaging.Rotate270(img)
		}
	}
	return img
}

// FitMM returns the display size in mm of an iw x ih pixel image scaled
// uniformly to fit a cellW x cellH cell.
func FitMM(iw, ih int, cellW, cellH float64) (w, h float64) {
	scale := math.Min(cellW/float64(iw), cellH/float64(ih))
	return float64(iw) * scale, float64(ih) * scale
}

// Shrink resamples img down to fill wMM x hMM at the given DPI. The pixel
// buffer is never upscaled: images smaller than the target keep their native
// pixels and are stretched by the document viewer instead. Targets collapse
// to 1x1 px at the smallest.
func Shrink(img image.Image, wMM, hMM float64, dpi int) *image.NRGBA {
	maxW := max(1, int(math.Round(wMM/constants.MMPerInch*float64(dpi))))
	maxH := max(1, int(math.Round(hMM/constants.MMPerInch*float64(dpi))))
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// EncodeJPEG returns img re-encoded as a JPEG stream at the given quality.
func EncodeJPEG(img image.Image, quality int) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf, nil
}
