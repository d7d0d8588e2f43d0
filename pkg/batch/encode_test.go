package batch

import "testing"

func TestPackSprite_RoundTrip(t *testing.T) {
	values := []int{-128, -127, -64, -1, 0, 1, 8, 64, 127}

	for _, v := range values {
		dst := Rect{X: v, Y: -v / 2, W: 8, H: v}
		src := Rect{X: 0, Y: v, W: v, H: 16}

		gotDst, gotSrc := UnpackSprite(PackSprite(dst, src, false, false))
		if gotDst != dst {
			t.Errorf("dst round trip for %d: got %+v, want %+v", v, gotDst, dst)
		}
		if gotSrc != src {
			t.Errorf("src round trip for %d: got %+v, want %+v", v, gotSrc, src)
		}
	}
}

func TestPackSprite_Layout(t *testing.T) {
	e := PackSprite(Rect{0, 0, 0, 0}, Rect{1, 2, 3, 4}, false, false)
	if e[0] != 0x80808080 {
		t.Errorf("word 0 = %#08x, want 0x80808080", e[0])
	}
	if e[1] != 0x81828384 {
		t.Errorf("word 1 = %#08x, want 0x81828384", e[1])
	}
}

func TestPackSprite_Flip(t *testing.T) {
	dst := Rect{10, 20, 8, 8}
	src := Rect{16, 24, 8, 16}

	tests := []struct {
		name         string
		flipX, flipY bool
		wantW, wantH int
	}{
		{"none", false, false, 8, 16},
		{"x", true, false, -8, 16},
		{"y", false, true, 8, -16},
		{"both", true, true, -8, -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDst, gotSrc := UnpackSprite(PackSprite(dst, src, tt.flipX, tt.flipY))
			if gotDst != dst {
				t.Errorf("dst = %+v, want %+v (flip must only touch the source)", gotDst, dst)
			}
			if gotSrc.W != tt.wantW || gotSrc.H != tt.wantH {
				t.Errorf("src extent = %dx%d, want %dx%d", gotSrc.W, gotSrc.H, tt.wantW, tt.wantH)
			}
			if gotSrc.X != src.X || gotSrc.Y != src.Y {
				t.Errorf("src origin = (%d,%d), want (%d,%d)", gotSrc.X, gotSrc.Y, src.X, src.Y)
			}
		})
	}
}

func TestPackSprite_Wraps(t *testing.T) {
	// 128 does not fit the signed byte range and wraps to -128.
	_, src := UnpackSprite(PackSprite(Rect{}, Rect{W: 128}, false, false))
	if src.W != -128 {
		t.Errorf("W = %d, want -128", src.W)
	}
}

func TestPackQuad_RoundTrip(t *testing.T) {
	for _, v := range []int{-127, -50, 0, 1, 64, 127, 128} {
		x0, y0, x1, y1, c := UnpackQuad(PackQuad(v, 0, v, 127, 9))
		if x0 != v || y0 != 0 || x1 != v || y1 != 127 || c != 9 {
			t.Errorf("round trip for %d: got (%d,%d,%d,%d,c=%d)", v, x0, y0, x1, y1, c)
		}
	}
}

func TestPackQuad_Clamp(t *testing.T) {
	x0, y0, x1, y1, _ := UnpackQuad(PackQuad(-500, -128, 129, 1000, 1))
	if x0 != QuadMin || y0 != QuadMin {
		t.Errorf("low corner = (%d,%d), want (%d,%d)", x0, y0, QuadMin, QuadMin)
	}
	if x1 != QuadMax || y1 != QuadMax {
		t.Errorf("high corner = (%d,%d), want (%d,%d)", x1, y1, QuadMax, QuadMax)
	}
}

func TestLineVertices(t *testing.T) {
	v := Line{X0: 1, Y0: 2, X1: 30, Y1: 40, C: 8}.Vertices(nil)
	want := []float32{1, 2, 8, 30, 40, 8}
	if len(v) != len(want) {
		t.Fatalf("got %d floats, want %d", len(v), len(want))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}
