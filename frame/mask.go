package frame

import "github.com/RoaringBitmap/roaring/v2"

// Mask is a fixed-length boolean row mask backed by a roaring bitmap.
// Position i corresponds to row i of the container the mask was built for.
type Mask struct {
	bits *roaring.Bitmap
	n    int
}

// NewMask creates an all-false mask of the given length.
func NewMask(n int) *Mask {
	return &Mask{bits: roaring.New(), n: n}
}

// FullMask creates an all-true mask of the given length.
func FullMask(n int) *Mask {
	m := NewMask(n)
	if n > 0 {
		m.bits.AddRange(0, uint64(n))
	}
	return m
}

// Len returns the number of rows covered by the mask.
func (m *Mask) Len() int {
	return m.n
}

// Set marks row i as selected.
func (m *Mask) Set(i int) {
	m.bits.Add(uint32(i))
}

// Test reports whether row i is selected.
func (m *Mask) Test(i int) bool {
	return m.bits.Contains(uint32(i))
}

// Count returns the number of selected rows.
func (m *Mask) Count() int {
	return int(m.bits.GetCardinality())
}

// And intersects the mask with other in place. Both masks must cover the
// same number of rows.
func (m *Mask) And(other *Mask) {
	m.bits.And(other.bits)
}

// Or unions the mask with other in place. Both masks must cover the same
// number of rows.
func (m *Mask) Or(other *Mask) {
	m.bits.Or(other.bits)
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{bits: m.bits.Clone(), n: m.n}
}
