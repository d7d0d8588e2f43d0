package palette

import (
	"image"
	"image/color"
	"testing"
)

func TestFindClosest_ExactMatch(t *testing.T) {
	for i, c := range Default {
		got := FindClosest(int(c.R), int(c.G), int(c.B))
		if got != uint8(i) {
			t.Errorf("FindClosest(%d, %d, %d) = %d, want %d", c.R, c.G, c.B, got, i)
		}
	}

	if got := FindClosest(255, 0, 77); got != 8 {
		t.Errorf("FindClosest(255, 0, 77) = %d, want 8", got)
	}
}

func TestFindClosest_Range(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				if got := FindClosest(r, g, b); got >= Size {
					t.Fatalf("FindClosest(%d, %d, %d) = %d, out of range", r, g, b, got)
				}
			}
		}
	}
}

func TestClosest_TieBreaksToLowerIndex(t *testing.T) {
	var p Palette
	for i := range p {
		p[i] = Color{255, 255, 255}
	}
	p[0] = Color{0, 0, 0}
	p[1] = Color{10, 0, 0}
	p[2] = Color{30, 0, 0}

	if got := p.Closest(20, 0, 0); got != 1 {
		t.Errorf("Closest(20, 0, 0) = %d, want 1 (lower of two equidistant entries)", got)
	}

	// Swap the order: the earlier entry still wins.
	p[1], p[2] = p[2], p[1]
	if got := p.Closest(20, 0, 0); got != 1 {
		t.Errorf("Closest(20, 0, 0) after swap = %d, want 1", got)
	}
}

func TestClosest_ChannelWeighting(t *testing.T) {
	if Distance(0, 0, 0, 0, 10, 0) <= Distance(0, 0, 0, 0, 0, 10) {
		t.Error("a green shift should weigh more than an equal blue shift")
	}
	if Distance(0, 0, 0, 10, 0, 0) <= Distance(0, 0, 0, 0, 0, 10) {
		t.Error("a red shift should weigh more than an equal blue shift")
	}
	if Distance(0, 0, 0, 0, -10, 0) != Distance(0, 0, 0, 0, 10, 0) {
		t.Error("distance should not depend on the sign of the delta")
	}

	var p Palette
	for i := range p {
		p[i] = Color{0, 0, 0}
	}
	p[0] = Color{255, 0, 255}
	p[1] = Color{100, 110, 100} // green off by 10
	p[2] = Color{100, 100, 85}  // blue off by 15

	// Unweighted Euclidean distance would pick index 1.
	if got := p.Closest(100, 100, 100); got != 2 {
		t.Errorf("Closest(100, 100, 100) = %d, want 2", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  [3]int
		want  float64
		delta float64
	}{
		{"identical", [3]int{12, 34, 56}, [3]int{12, 34, 56}, 0, 0},
		{"red", [3]int{10, 0, 0}, [3]int{0, 0, 0}, 9, 1e-9},
		{"green", [3]int{0, 10, 0}, [3]int{0, 0, 0}, 34.81, 1e-9},
		{"blue", [3]int{0, 0, 10}, [3]int{0, 0, 0}, 1.21, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a[0], tt.a[1], tt.a[2], tt.b[0], tt.b[1], tt.b[2])
			if got < tt.want-tt.delta || got > tt.want+tt.delta {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	m := Model{Palette: &Default}

	got := m.Convert(color.RGBA{R: 250, G: 5, B: 80, A: 255})
	if got != Default[8] {
		t.Errorf("Convert() = %v, want %v", got, Default[8])
	}

	// Alpha is ignored.
	if idx := m.Index(color.NRGBA{R: 0, G: 228, B: 54, A: 0}); idx != 11 {
		t.Errorf("Index() = %d, want 11", idx)
	}
}

func TestQuantize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{41, 173, 255, 255})
	img.Set(2, 0, color.RGBA{250, 240, 230, 255})

	q := Default.Quantize(img)
	want := []uint8{0, 12, 7}
	for i, w := range want {
		if q.Pix[i] != w {
			t.Errorf("pixel %d = %d, want %d", i, q.Pix[i], w)
		}
	}
	if len(q.Palette) != Size {
		t.Errorf("palette has %d colors, want %d", len(q.Palette), Size)
	}
}

func TestQuantizer(t *testing.T) {
	q := Quantizer{Palette: &Default}
	p := q.Quantize(make(color.Palette, 0, 256), nil)
	if len(p) != Size {
		t.Fatalf("Quantize() returned %d colors, want %d", len(p), Size)
	}
	if p[8] != Default[8] {
		t.Errorf("Quantize()[8] = %v, want %v", p[8], Default[8])
	}
}

func TestFloat32s(t *testing.T) {
	f := Default.Float32s()
	if len(f) != Size*3 {
		t.Fatalf("Float32s() returned %d values, want %d", len(f), Size*3)
	}
	// White-ish entry 7: (255, 241, 232)
	if f[7*3] != 1 {
		t.Errorf("entry 7 red = %v, want 1", f[7*3])
	}
}

func TestRemap(t *testing.T) {
	r := IdentityRemap()
	for i := 0; i < Size; i++ {
		if r.Apply(uint8(i)) != uint8(i) {
			t.Fatalf("identity remap changed color %d", i)
		}
	}

	r.Set(7, 8)
	if r.Apply(7) != 8 {
		t.Errorf("Apply(7) = %d, want 8", r.Apply(7))
	}
	if got := r.Int32s()[7]; got != 8 {
		t.Errorf("Int32s()[7] = %d, want 8", got)
	}

	r.Reset()
	if r.Apply(7) != 7 {
		t.Errorf("Apply(7) after Reset = %d, want 7", r.Apply(7))
	}
}

func TestAlphaMask(t *testing.T) {
	m := DefaultAlphaMask()
	if !m.Transparent(0) {
		t.Error("color 0 should be transparent by default")
	}
	for i := uint8(1); i < Size; i++ {
		if m.Transparent(i) {
			t.Errorf("color %d should be opaque by default", i)
		}
	}

	m.Set(14, true)
	m.Set(0, false)
	ints := m.Int32s()
	if ints[14] != 1 || ints[0] != 0 {
		t.Errorf("Int32s() = %v, want [0]=0 and [14]=1", ints)
	}
}
