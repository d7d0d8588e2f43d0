// Package assets loads image files and imports them as palette-indexed
// sprite sheets.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/voxconsole/vox/internal/engine/texture"
)

// DecodeImage decodes image data. TGA has no magic number and is selected by
// the file extension; every other format is sniffed by image.Decode.
func DecodeImage(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		return texture.DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// LoadImage reads and decodes an image file from fsys.
func LoadImage(fsys fs.FS, name string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(name, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// LoadImageFile reads and decodes an image from a filesystem path.
func LoadImageFile(filename string) (image.Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(filename, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return img, nil
}
