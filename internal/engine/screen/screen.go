// Package screen defines the console's virtual screen geometry and the
// letterboxed viewport it occupies inside the window.
package screen

import "image"

const (
	// Width is the side of the square virtual screen in console pixels.
	// It must be a power of two.
	Width = 128
	// Padding is the minimum border kept around an integer-scaled screen.
	Padding = 8
)

// CalcRect returns the centered square viewport for a window of the given
// size. Windows smaller than the virtual screen get the largest power of two
// that fits (at most 64). Larger windows get the largest multiple of Width
// strictly smaller than the window with Padding removed; if there is none,
// the screen is drawn at 1x.
func CalcRect(width, height int) image.Rectangle {
	side := 1
	m := min(width, height)

	if m < Width {
		n := 6
		for n > 0 && 1<<n > m {
			n--
		}
		side = 1 << n
	} else {
		m -= Padding
		n := 1
		for n*Width < m {
			n++
		}
		side = (n - 1) * Width
		if side == 0 {
			side = Width
		}
	}

	x := (width - side) / 2
	y := (height - side) / 2
	return image.Rect(x, y, x+side, y+side)
}

// Scale returns the integer zoom factor of a viewport produced by CalcRect.
// Viewports smaller than the screen report 0.
func Scale(viewport image.Rectangle) int {
	return viewport.Dx() / Width
}

// ToConsole converts a window position to console pixel coordinates inside
// viewport. ok is false when the position lies outside the viewport.
func ToConsole(viewport image.Rectangle, wx, wy int) (x, y int, ok bool) {
	p := image.Pt(wx, wy)
	if !p.In(viewport) || viewport.Dx() == 0 {
		return 0, 0, false
	}
	x = (wx - viewport.Min.X) * Width / viewport.Dx()
	y = (wy - viewport.Min.Y) * Width / viewport.Dy()
	return x, y, true
}

// Ortho returns a column-major orthographic projection mapping console
// pixels (0,0)-(Width,Width) to clip space with y pointing down.
func Ortho() [16]float32 {
	return orthoMatrix(0, Width, Width, 0, -1, 1)
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
