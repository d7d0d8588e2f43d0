package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/voxconsole/vox/pkg/palette"
)

func TestCaptureSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := NewCapture(dir, "rects")
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 77, 255})

	name, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(dir, "rects_2024-03-09_14-05-07.png"); name != want {
		t.Errorf("Save wrote %q, want %q", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written file: %v", err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 77 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	c := NewCapture("", "shot")
	c.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	if got := c.Filename(); got != "shot_2025-01-02_03-04-05.png" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestFromGLPixels(t *testing.T) {
	// Two rows, bottom row first as GL returns them.
	pixels := []byte{
		1, 1, 1, 255, 2, 2, 2, 255,
		3, 3, 3, 255, 4, 4, 4, 255,
	}
	img, err := FromGLPixels(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got.R != 3 {
		t.Errorf("top-left = %v, want the last GL row", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 2 {
		t.Errorf("bottom-right = %v, want the first GL row", got)
	}

	if _, err := FromGLPixels(pixels, 3, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestScale(t *testing.T) {
	src := palette.Default.Quantize(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	src.SetColorIndex(1, 0, 8)

	scaled := Scale(src, 3)
	p, ok := scaled.(*image.Paletted)
	if !ok {
		t.Fatalf("Scale returned %T, want *image.Paletted", scaled)
	}
	if p.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("bounds = %v", p.Bounds())
	}
	for _, pt := range []image.Point{{3, 0}, {5, 2}} {
		if got := p.ColorIndexAt(pt.X, pt.Y); got != 8 {
			t.Errorf("index at %v = %d, want 8", pt, got)
		}
	}
	if got := p.ColorIndexAt(2, 2); got != 0 {
		t.Errorf("index at (2,2) = %d, want 0", got)
	}

	if Scale(src, 1) != image.Image(src) {
		t.Error("factor 1 should return the source")
	}
}

func TestQuantize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{41, 173, 255, 255})
		}
	}

	for _, dither := range []bool{false, true} {
		q := Quantize(img, &palette.Default, dither)
		for i, c := range q.Pix {
			if c != 12 {
				t.Fatalf("dither=%v: pixel %d = %d, want 12", dither, i, c)
			}
		}
	}
}
