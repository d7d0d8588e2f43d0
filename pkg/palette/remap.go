package palette

// Remap substitutes palette indices at draw time: a pixel of color i is drawn
// with color Remap[i].
type Remap [Size]uint8

// IdentityRemap returns a remap that leaves every color unchanged.
func IdentityRemap() Remap {
	var r Remap
	r.Reset()
	return r
}

// Reset restores the identity mapping.
func (r *Remap) Reset() {
	for i := range r {
		r[i] = uint8(i)
	}
}

// Set maps color from to color to. Both are masked to 0-15.
func (r *Remap) Set(from, to uint8) {
	r[from&(Size-1)] = to & (Size - 1)
}

// Apply returns the remapped color for i.
func (r *Remap) Apply(i uint8) uint8 {
	return r[i&(Size-1)]
}

// Int32s returns the table as an int[16] shader uniform.
func (r *Remap) Int32s() []int32 {
	out := make([]int32, Size)
	for i, v := range r {
		out[i] = int32(v)
	}
	return out
}

// AlphaMask marks palette indices that render as transparent.
type AlphaMask [Size]bool

// DefaultAlphaMask returns the default mask where only color 0 is transparent.
func DefaultAlphaMask() AlphaMask {
	var m AlphaMask
	m.Reset()
	return m
}

// Reset makes color 0 transparent and every other color opaque.
func (m *AlphaMask) Reset() {
	*m = AlphaMask{}
	m[0] = true
}

// Set changes the transparency of color c.
func (m *AlphaMask) Set(c uint8, transparent bool) {
	m[c&(Size-1)] = transparent
}

// Transparent reports whether color c is masked out.
func (m *AlphaMask) Transparent(c uint8) bool {
	return m[c&(Size-1)]
}

// Int32s returns the mask as an int[16] shader uniform (1 = transparent).
func (m *AlphaMask) Int32s() []int32 {
	out := make([]int32, Size)
	for i, t := range m {
		if t {
			out[i] = 1
		}
	}
	return out
}
