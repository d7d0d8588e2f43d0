// Package snapshot writes console frames and converted images to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/voxconsole/vox/pkg/palette"
)

// TimestampLayout is the time format used in generated file names.
const TimestampLayout = "2006-01-02_15-04-05"

// Capture saves images under timestamped names.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewCapture creates a capture writing <prefix>_<timestamp>.png files into
// outputDir, or the working directory when it is empty.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the name the next capture would be written to.
func (c *Capture) Filename() string {
	filename := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format(TimestampLayout))
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save writes img and returns the file name.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := c.Filename()
	if err := WritePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

// FromGLPixels builds an image from tightly packed RGBA rows read back
// from OpenGL, flipping them since GL's origin is bottom-left.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// Scale enlarges img by an integer factor without smoothing. Paletted
// images stay paletted. A factor below 2 returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)

	var dst xdraw.Image
	if p, ok := img.(*image.Paletted); ok {
		dst = image.NewPaletted(r, p.Palette)
	} else {
		dst = image.NewRGBA(r)
	}
	xdraw.NearestNeighbor.Scale(dst, r, img, b, xdraw.Src, nil)
	return dst
}

// Quantize converts img to the palette, optionally with Floyd-Steinberg
// error diffusion.
func Quantize(img image.Image, p *palette.Palette, dither bool) *image.Paletted {
	if !dither {
		return p.Quantize(img)
	}
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p.ColorPalette())
	xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), img, b.Min)
	return dst
}
