// Package texture decodes image formats the standard library and
// golang.org/x/image do not cover.
package texture

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2  // uncompressed true-color
	TGATypeGray         = 3  // uncompressed grayscale
	TGATypeRLETrueColor = 10 // RLE true-color
	TGATypeRLEGray      = 11 // RLE grayscale
)

const tgaHeaderSize = 18

var (
	ErrTGATruncated   = errors.New("tga: data truncated")
	ErrTGAColorMapped = errors.New("tga: color-mapped images not supported")
)

// tgaHeader holds the fields of the 18-byte TGA header that matter here.
type tgaHeader struct {
	idLength   int
	imageType  byte
	width      int
	height     int
	bpp        int
	descriptor byte
}

func (h tgaHeader) topToBottom() bool {
	return h.descriptor&0x20 != 0
}

func (h tgaHeader) gray() bool {
	return h.imageType == TGATypeGray || h.imageType == TGATypeRLEGray
}

func (h tgaHeader) rle() bool {
	return h.imageType == TGATypeRLETrueColor || h.imageType == TGATypeRLEGray
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, ErrTGATruncated
	}
	h := tgaHeader{
		idLength:   int(data[0]),
		imageType:  data[2],
		width:      int(data[12]) | int(data[13])<<8,
		height:     int(data[14]) | int(data[15])<<8,
		bpp:        int(data[16]),
		descriptor: data[17],
	}

	if data[1] != 0 {
		return h, ErrTGAColorMapped
	}
	switch h.imageType {
	case TGATypeTrueColor, TGATypeRLETrueColor:
		if h.bpp != 24 && h.bpp != 32 {
			return h, fmt.Errorf("tga: unsupported true-color depth %d", h.bpp)
		}
	case TGATypeGray, TGATypeRLEGray:
		if h.bpp != 8 {
			return h, fmt.Errorf("tga: unsupported grayscale depth %d", h.bpp)
		}
	default:
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	return h, nil
}

// DecodeTGA decodes uncompressed and RLE TGA data, true-color (24/32 bpp) or
// grayscale (8 bpp).
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	src := data[offset:]
	bytesPerPixel := h.bpp / 8
	total := h.width * h.height
	if total > maxTGAPixels(h, len(src)) {
		return nil, ErrTGATruncated
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	r := &tgaPixels{src: src, bytesPerPixel: bytesPerPixel, gray: h.gray()}

	for i := 0; i < total; {
		count, repeat := 1, false
		if h.rle() {
			packet, ok := r.next()
			if !ok {
				return nil, ErrTGATruncated
			}
			count = int(packet&0x7f) + 1
			repeat = packet&0x80 != 0
		}

		var px [4]byte
		for n := 0; n < count && i < total; n++ {
			if n == 0 || !repeat {
				if !r.pixel(&px) {
					return nil, ErrTGATruncated
				}
			}
			x, y := i%h.width, i/h.width
			if !h.topToBottom() {
				y = h.height - 1 - y
			}
			copy(img.Pix[img.PixOffset(x, y):], px[:])
			i++
		}
	}

	return img, nil
}

// maxTGAPixels is the most pixels n bytes of image data can describe. An RLE
// packet is one header byte and one pixel covering up to 128 pixels.
func maxTGAPixels(h tgaHeader, n int) int {
	bytesPerPixel := h.bpp / 8
	if h.rle() {
		return 128 * (n / (1 + bytesPerPixel))
	}
	return n / bytesPerPixel
}

// Decode reads a whole TGA stream. It has the image.Decode signature.
func Decode(rd io.Reader) (image.Image, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return DecodeTGA(data)
}

// DecodeConfig returns the dimensions of a TGA stream.
func DecodeConfig(rd io.Reader) (image.Config, error) {
	var buf [tgaHeaderSize]byte
	if _, err := io.ReadFull(rd, buf[:]); err != nil {
		return image.Config{}, ErrTGATruncated
	}
	h, err := parseTGAHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{Width: h.width, Height: h.height}, nil
}

// tgaPixels reads BGR(A) or gray pixels from a TGA data section.
type tgaPixels struct {
	src           []byte
	pos           int
	bytesPerPixel int
	gray          bool
}

func (r *tgaPixels) next() (byte, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	b := r.src[r.pos]
	r.pos++
	return b, true
}

// pixel reads one pixel as non-premultiplied RGBA into px.
func (r *tgaPixels) pixel(px *[4]byte) bool {
	if r.pos+r.bytesPerPixel > len(r.src) {
		return false
	}
	p := r.src[r.pos : r.pos+r.bytesPerPixel]
	r.pos += r.bytesPerPixel

	if r.gray {
		*px = [4]byte{p[0], p[0], p[0], 0xff}
		return true
	}
	px[0], px[1], px[2], px[3] = p[2], p[1], p[0], 0xff
	if r.bytesPerPixel == 4 {
		px[3] = p[3]
	}
	return true
}
