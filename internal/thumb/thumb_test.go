package thumb

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// solidImage returns a w x h image filled with a single color.
func solidImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 120, B: 40, A: 255})
		}
	}
	return img
}

// writePNG creates a w x h PNG file inside dir and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, solidImage(w, h)); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input string
		want  Orientation
	}{
		{"portrait", OrientPortrait},
		{"landscape", OrientLandscape},
		{"none", OrientNone},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.input)
		if err != nil {
			t.Errorf("ParseOrientation(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}

	if _, err := ParseOrientation("upside-down"); err == nil {
		t.Error("expected an error for an unknown orientation name")
	}
}

func TestUnify(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		orient Orientation
		wantW  int
		wantH  int
	}{
		{"portrait rotates landscape", 40, 20, OrientPortrait, 20, 40},
		{"portrait keeps portrait", 20, 40, OrientPortrait, 20, 40},
		{"landscape rotates portrait", 20, 40, OrientLandscape, 40, 20},
		{"landscape keeps landscape", 40, 20, OrientLandscape, 40, 20},
		{"none keeps everything", 40, 20, OrientNone, 40, 20},
		{"square never rotates", 30, 30, OrientPortrait, 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unify(solidImage(tt.w, tt.h), tt.orient)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestUnify_ForcedAspectAlwaysHolds(t *testing.T) {
	sizes := [][2]int{{10, 10}, {64, 48}, {48, 64}, {1, 100}, {100, 1}}
	for _, size := range sizes {
		portrait := Unify(solidImage(size[0], size[1]), OrientPortrait).Bounds()
		if portrait.Dy() < portrait.Dx() {
			t.Errorf("%dx%d forced portrait: got %dx%d", size[0], size[1], portrait.Dx(), portrait.Dy())
		}

		landscape := Unify(solidImage(size[0], size[1]), OrientLandscape).Bounds()
		if landscape.Dx() < landscape.Dy() {
			t.Errorf("%dx%d forced landscape: got %dx%d", size[0], size[1], landscape.Dx(), landscape.Dy())
		}
	}
}

func TestFitMM(t *testing.T) {
	// 400x200 into 62x91: scale = min(62/400, 91/200) = 0.155 -> 62.0 x 31.0
	w, h := FitMM(400, 200, 62.0, 91.0)
	if math.Abs(w-62.0) > 0.01 || math.Abs(h-31.0) > 0.01 {
		t.Errorf("expected 62.0 x 31.0, got %.2f x %.2f", w, h)
	}

	// 200x400 into 62x91: scale = min(62/200, 91/400) = 0.2275 -> 45.5 x 91.0
	w, h = FitMM(200, 400, 62.0, 91.0)
	if math.Abs(w-45.5) > 0.01 || math.Abs(h-91.0) > 0.01 {
		t.Errorf("expected 45.5 x 91.0, got %.2f x %.2f", w, h)
	}
}

func TestFitMM_StaysInsideCell(t *testing.T) {
	sizes := [][2]int{{1, 1}, {30, 20}, {20, 30}, {1000, 10}, {10, 1000}}
	for _, size := range sizes {
		w, h := FitMM(size[0], size[1], 62.0, 91.0)
		if w > 62.01 || h > 91.01 {
			t.Errorf("%dx%d: display %.2f x %.2f exceeds the cell", size[0], size[1], w, h)
		}
		if w < 61.99 && h < 90.99 {
			t.Errorf("%dx%d: display %.2f x %.2f fills neither cell dimension", size[0], size[1], w, h)
		}
	}
}

func TestShrink_Downscales(t *testing.T) {
	// 50 mm at 150 dpi = round(50/25.4*150) = 295 px, 25 mm = 148 px.
	got := Shrink(solidImage(400, 200), 50.0, 25.0, 150)
	b := got.Bounds()
	if b.Dx() > 295 || b.Dy() > 148 {
		t.Errorf("expected at most 295x148, got %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() >= 400 {
		t.Errorf("expected the buffer to shrink, got width %d", b.Dx())
	}
}

func TestShrink_NeverUpscales(t *testing.T) {
	got := Shrink(solidImage(10, 8), 200.0, 200.0, 300)
	b := got.Bounds()
	if b.Dx() != 10 || b.Dy() != 8 {
		t.Errorf("expected the native 10x8 buffer, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestShrink_FloorsAtOnePixel(t *testing.T) {
	got := Shrink(solidImage(100, 100), 0.01, 0.01, 150)
	b := got.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		t.Errorf("expected at least 1x1, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoad_PNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "frame.png", 30, 20)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "gone.jpg")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a corrupt file")
	}
}

func TestEncodeJPEG_Decodable(t *testing.T) {
	buf, err := EncodeJPEG(solidImage(25, 15), 85)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, format, err := image.DecodeConfig(buf)
	if err != nil {
		t.Fatalf("re-decoding failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg, got %s", format)
	}
	if cfg.Width != 25 || cfg.Height != 15 {
		t.Errorf("expected 25x15, got %dx%d", cfg.Width, cfg.Height)
	}
}
