package blocks

import (
	"fmt"
	"math/bits"
)

// MaxRowWidth is the widest row a uint64 can back.
const MaxRowWidth = 64

// Row is a fixed-width bit vector. Index 0 is the most-significant, leftmost cell.
// Rows are values: every operation returns a new Row and leaves the receiver untouched.
type Row struct {
	width int
	value uint64
}

// NewRow returns an all-zero row of the given width.
// It panics if width is outside 1..MaxRowWidth.
func NewRow(width int) Row {
	if width < 1 || width > MaxRowWidth {
		panic(fmt.Sprintf("invalid row width %d", width))
	}
	return Row{width: width}
}

// RowFromUint64 encodes v in a row of the given width.
func RowFromUint64(v uint64, width int) (Row, error) {
	r := NewRow(width)
	if bits.Len64(v) > width {
		return Row{}, fmt.Errorf("%w: %d needs %d bits, row has %d", ErrValueTooWide, v, bits.Len64(v), width)
	}
	r.value = v
	return r, nil
}

// MinimalRow encodes v in the narrowest row that holds it (at least one cell).
func MinimalRow(v uint64) Row {
	return Row{width: max(bits.Len64(v), 1), value: v}
}

// PackBits packs a bit sequence, first element most significant, into an integer.
// It is the explicit conversion to use before handing a bit slice to And, Or or Xor.
func PackBits(seq []bool) uint64 {
	var v uint64
	for _, b := range seq {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

func (r Row) mask() uint64 {
	if r.width == MaxRowWidth {
		return ^uint64(0)
	}
	return 1<<r.width - 1
}

func (r Row) with(v uint64) Row {
	return Row{width: r.width, value: v & r.mask()}
}

// Width returns the fixed number of cells in the row.
func (r Row) Width() int {
	return r.width
}

// Uint64 packs the cells MSB-first into an unsigned integer.
func (r Row) Uint64() uint64 {
	return r.value
}

// Bit reports whether cell i (0 = leftmost) is set.
func (r Row) Bit(i int) bool {
	if i < 0 || i >= r.width {
		panic(fmt.Sprintf("bit %d out of row width %d", i, r.width))
	}
	return r.value>>(r.width-1-i)&1 == 1
}

// Bits returns the cells left to right.
func (r Row) Bits() []bool {
	out := make([]bool, r.width)
	for i := range out {
		out[i] = r.Bit(i)
	}
	return out
}

// ShiftLeft moves every cell n places left, dropping cells that fall off and zero-filling.
func (r Row) ShiftLeft(n int) Row {
	if n < 0 {
		panic(fmt.Sprintf("negative shift %d", n))
	}
	if n >= r.width {
		return r.with(0)
	}
	return r.with(r.value << n)
}

// ShiftRight moves every cell n places right, dropping cells that fall off and zero-filling.
func (r Row) ShiftRight(n int) Row {
	if n < 0 {
		panic(fmt.Sprintf("negative shift %d", n))
	}
	if n >= r.width {
		return r.with(0)
	}
	return r.with(r.value >> n)
}

// And returns r & v. Bits of v above the row width are ignored.
func (r Row) And(v uint64) Row {
	return r.with(r.value & v)
}

// Or returns r | v. Bits of v above the row width are ignored.
func (r Row) Or(v uint64) Row {
	return r.with(r.value | v)
}

// Xor returns r ^ v. Bits of v above the row width are ignored.
func (r Row) Xor(v uint64) Row {
	return r.with(r.value ^ v)
}

// Add returns the row holding r + v at the same width.
func (r Row) Add(v uint64) (Row, error) {
	sum, carry := bits.Add64(r.value, v, 0)
	if carry != 0 || sum&^r.mask() != 0 {
		return Row{}, fmt.Errorf("%w: %d + %d overflows %d bits", ErrValueTooWide, r.value, v, r.width)
	}
	return r.with(sum), nil
}

// IsZero reports whether no cell is set.
func (r Row) IsZero() bool {
	return r.value == 0
}

// IsAllSet reports whether every cell is set.
func (r Row) IsAllSet() bool {
	return r.value == r.mask()
}

// IsAllSame reports whether the row is either fully empty or fully set.
func (r Row) IsAllSame() bool {
	return r.value == 0 || r.IsAllSet()
}

// Equal compares width and cells.
func (r Row) Equal(o Row) bool {
	return r.width == o.width && r.value == o.value
}

// EqualUint64 compares the numeric value of the row with v.
func (r Row) EqualUint64(v uint64) bool {
	return r.value == v
}

func (r Row) String() string {
	return fmt.Sprintf("Row(%0*b)", r.width, r.value)
}
