package blocks

import (
	"fmt"
	"math/bits"
	"slices"
)

// Piece is a falling shape: one mask per row, top to bottom, anchored at the top-left
// corner of its bounding box. The rightmost column of the box is bit 0 of every mask.
//
// Pieces are immutable. Every transform returns a new, normalized Piece.
type Piece struct {
	masks  []uint64
	x, y   int
	width  int
	length int
}

// NewPiece builds a normalized piece from row masks and a top-left anchor.
//
// Leading empty rows are stripped and folded into y, trailing empty rows are dropped,
// and empty right-hand columns are shifted away without moving x.
func NewPiece(masks []uint64, x, y int) (Piece, error) {
	start := 0
	for start < len(masks) && masks[start] == 0 {
		start++
	}
	end := len(masks)
	for end > start && masks[end-1] == 0 {
		end--
	}
	if start == end {
		return Piece{}, ErrEmptyShape
	}

	rows := slices.Clone(masks[start:end])
	var all uint64
	for _, m := range rows {
		all |= m
	}
	if shift := bits.TrailingZeros64(all); shift > 0 {
		for i := range rows {
			rows[i] >>= shift
		}
	}

	return Piece{
		masks:  rows,
		x:      x,
		y:      y + start,
		width:  bits.Len64(maxMask(rows)),
		length: len(rows),
	}, nil
}

// MustPiece is like NewPiece but panics on error. Intended for static shape tables.
func MustPiece(masks []uint64, x, y int) Piece {
	p, err := NewPiece(masks, x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func maxMask(masks []uint64) uint64 {
	var m uint64
	for _, v := range masks {
		m = max(m, v)
	}
	return m
}

// reanchor rebuilds a piece after columns were trimmed from masks that are still
// aligned to a box of the given width, moving x right past emptied left columns.
func reanchor(masks []uint64, x, y, width int) (Piece, error) {
	dx := width - bits.Len64(maxMask(masks))
	return NewPiece(masks, x+dx, y)
}

// Masks returns a copy of the row masks, top to bottom.
func (p Piece) Masks() []uint64 { return slices.Clone(p.masks) }

// X is the column of the bounding box's left edge.
func (p Piece) X() int { return p.x }

// Y is the row of the bounding box's top edge. It may be negative.
func (p Piece) Y() int { return p.y }

// Width is the number of columns in the bounding box.
func (p Piece) Width() int { return p.width }

// Length is the number of rows in the bounding box.
func (p Piece) Length() int { return p.length }

// Bottom is the row of the bounding box's bottom edge.
func (p Piece) Bottom() int { return p.y + p.length - 1 }

// IsZero reports whether p is the zero Piece (no rows).
func (p Piece) IsZero() bool { return p.length == 0 }

// Cells counts the set cells.
func (p Piece) Cells() int {
	n := 0
	for _, m := range p.masks {
		n += bits.OnesCount64(m)
	}
	return n
}

// Moved returns the same shape translated by dx columns and dy rows.
func (p Piece) Moved(dx, dy int) Piece {
	q := p
	q.masks = slices.Clone(p.masks)
	q.x += dx
	q.y += dy
	return q
}

// Equal compares shape and anchor.
func (p Piece) Equal(o Piece) bool {
	return p.x == o.x && p.y == o.y && slices.Equal(p.masks, o.masks)
}

// CutRow removes row index (negative counts from the bottom) and re-normalizes.
func (p Piece) CutRow(index int) (Piece, error) {
	if index < -p.length || index >= p.length {
		return Piece{}, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, p.length)
	}
	if index < 0 {
		index += p.length
	}
	masks := slices.Clone(p.masks)
	masks[index] = 0
	return NewPiece(masks, p.x, p.y)
}

// CutLastRow removes the bottom row.
func (p Piece) CutLastRow() (Piece, error) {
	return p.CutRow(-1)
}

// CutColumn removes column index, counted from the left (negative counts from the right).
func (p Piece) CutColumn(index int) (Piece, error) {
	if index < -p.width || index >= p.width {
		return Piece{}, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, p.width)
	}
	if index < 0 {
		index += p.width
	}
	keep := ^(uint64(1) << (p.width - 1 - index))
	masks := make([]uint64, p.length)
	for i, m := range p.masks {
		masks[i] = m & keep
	}
	return reanchor(masks, p.x, p.y, p.width)
}

// RotateCCW rotates the shape 90° counterclockwise. With aboutCenter the geometric
// center of the bounding box stays put (rounding toward the top-left); otherwise the
// anchor moves up by the old width.
func (p Piece) RotateCCW(aboutCenter bool) (Piece, error) {
	masks := make([]uint64, p.width)
	for i := range masks {
		var v uint64
		for t, m := range p.masks {
			v |= (m >> i & 1) << (p.length - 1 - t)
		}
		masks[i] = v
	}

	x, y := p.x, p.y-p.width
	if aboutCenter {
		x = p.x + p.width/2 - p.length/2
		y = p.y + p.length/2 - p.width/2
	}
	return NewPiece(masks, x, y)
}

// BlockedAt removes the cells that cannot follow the piece down when the columns in
// obstructed are blocked beneath row from.
//
// Walking up from row from, obstructed cells present in a row are cut from it and stop
// there; obstruction under an empty cell carries on to the row above.
func (p Piece) BlockedAt(obstructed uint64, from int) (Piece, error) {
	if from < 0 || from >= p.length {
		return Piece{}, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, from, p.length)
	}
	masks := slices.Clone(p.masks)
	cutUpward(masks, obstructed, from)
	return reanchor(masks, p.x, p.y, p.width)
}

func cutUpward(masks []uint64, obstructed uint64, from int) {
	for i := from; i >= 0 && obstructed != 0; i-- {
		hit := masks[i] & obstructed
		masks[i] &^= hit
		obstructed &^= hit
	}
}

func (p Piece) String() string {
	return fmt.Sprintf("Piece(%v, x=%d, y=%d)", p.masks, p.x, p.y)
}
