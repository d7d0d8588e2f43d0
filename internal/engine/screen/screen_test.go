package screen

import (
	"image"
	"testing"
)

func TestCalcRect(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          image.Rectangle
	}{
		{"default window", 800, 800, image.Rect(16, 16, 784, 784)},
		{"wide window letterboxes horizontally", 1280, 720, image.Rect(320, 40, 960, 680)},
		{"padded size above a multiple", 521, 521, image.Rect(4, 4, 516, 516)},
		{"padded size equal to a multiple steps down", 520, 520, image.Rect(68, 68, 452, 452)},
		{"just below a multiple", 512, 512, image.Rect(64, 64, 448, 448)},
		{"small window uses power of two", 100, 90, image.Rect(18, 13, 82, 77)},
		{"tiny window", 40, 40, image.Rect(4, 4, 36, 36)},
		{"1x when padding does not fit", 130, 130, image.Rect(1, 1, 129, 129)},
		{"degenerate", 0, 0, image.Rect(0, 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcRect(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("CalcRect(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
			if got.Dx() != got.Dy() {
				t.Errorf("viewport %v is not square", got)
			}
		})
	}
}

func TestScale(t *testing.T) {
	if s := Scale(CalcRect(800, 800)); s != 6 {
		t.Errorf("Scale = %d, want 6", s)
	}
	if s := Scale(CalcRect(100, 100)); s != 0 {
		t.Errorf("Scale = %d, want 0", s)
	}
}

func TestToConsole(t *testing.T) {
	vp := image.Rect(16, 16, 784, 784) // 6x

	x, y, ok := ToConsole(vp, 16, 16)
	if !ok || x != 0 || y != 0 {
		t.Errorf("top-left = (%d,%d,%v), want (0,0,true)", x, y, ok)
	}

	x, y, ok = ToConsole(vp, 783, 783)
	if !ok || x != 127 || y != 127 {
		t.Errorf("bottom-right = (%d,%d,%v), want (127,127,true)", x, y, ok)
	}

	if _, _, ok := ToConsole(vp, 5, 400); ok {
		t.Error("position in the letterbox should be outside the viewport")
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho()

	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	tests := []struct {
		x, y   float32
		cx, cy float32
	}{
		{0, 0, -1, 1},
		{Width, Width, 1, -1},
		{Width / 2, Width / 2, 0, 0},
	}
	for _, tt := range tests {
		cx, cy := project(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
}
