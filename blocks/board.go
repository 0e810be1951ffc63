package blocks

import (
	"fmt"
	"slices"
)

// Board is a fixed grid of rows, top row first, with at most one falling piece.
//
// The active piece's cells are written into the rows by Put, so the rows always show
// everything on the board. A Board is not safe for concurrent use.
type Board struct {
	columns int
	height  int
	rows    []Row
	active  *Piece
}

// NewBoard returns an empty board. It panics on a non-positive size or a width above
// MaxRowWidth.
func NewBoard(columns, height int) *Board {
	if height < 1 {
		panic(fmt.Sprintf("invalid board height %d", height))
	}
	b := &Board{
		columns: columns,
		height:  height,
		rows:    make([]Row, height),
	}
	for i := range b.rows {
		b.rows[i] = NewRow(columns)
	}
	return b
}

// Columns returns the board width.
func (b *Board) Columns() int { return b.columns }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Row returns row i, 0 being the top.
func (b *Board) Row(i int) Row { return b.rows[i] }

// Rows returns a copy of the rows, top first.
func (b *Board) Rows() []Row { return slices.Clone(b.rows) }

// Active returns the falling piece, if any.
func (b *Board) Active() (Piece, bool) {
	if b.active == nil {
		return Piece{}, false
	}
	return *b.active, true
}

// Reset empties every row and drops the active piece.
func (b *Board) Reset() {
	for i := range b.rows {
		b.rows[i] = NewRow(b.columns)
	}
	b.active = nil
}

// FullRows returns the indices of rows with every cell set.
func (b *Board) FullRows() []int {
	var full []int
	for i, r := range b.rows {
		if r.IsAllSet() {
			full = append(full, i)
		}
	}
	return full
}

// shift is how far a piece mask moves left to line up with board columns.
func (b *Board) shift(p Piece) int {
	return b.columns - p.x - p.width
}

// Put writes p into the board and makes it the active piece.
//
// Rows of p above the board (negative row index) are not written. Nothing is written
// unless every target cell is empty.
func (b *Board) Put(p Piece) error {
	if p.IsZero() {
		return ErrEmptyShape
	}
	if p.x < 0 || p.x+p.width > b.columns || p.Bottom() >= b.height {
		return fmt.Errorf("%w: %dx%d at (%d, %d) on %dx%d board",
			ErrOutOfBounds, p.width, p.length, p.x, p.y, b.columns, b.height)
	}

	shift := b.shift(p)
	for i, m := range p.masks {
		r := p.y + i
		if r < 0 {
			continue
		}
		if b.rows[r].Uint64()&(m<<shift) != 0 {
			return fmt.Errorf("%w: row %d", ErrSpaceOccupied, r)
		}
	}
	for i, m := range p.masks {
		r := p.y + i
		if r < 0 {
			continue
		}
		b.rows[r] = b.rows[r].Or(m << shift)
	}
	b.active = &p
	return nil
}

// lift clears the cells of p from the rows.
func (b *Board) lift(p Piece) {
	shift := b.shift(p)
	for i, m := range p.masks {
		if r := p.y + i; r >= 0 {
			b.rows[r] = b.rows[r].And(^(m << shift))
		}
	}
}

// collisions returns, per piece row, the cells whose downward neighbour is filled
// terrain. grounded is true if the bottom row already rests on the last board row.
func (b *Board) collisions(p Piece) (hits []uint64, grounded bool) {
	hits = make([]uint64, p.length)
	shift := b.shift(p)
	for i, m := range p.masks {
		below := p.y + i + 1
		edge := m
		if i+1 < p.length {
			edge = m &^ p.masks[i+1]
		}
		switch {
		case below >= b.height:
			grounded = true
			hits[i] = m
		case below < 0:
		default:
			hits[i] = b.rows[below].Uint64() >> shift & edge
		}
	}
	return hits, grounded
}

// CheckDescent reports whether the active piece may move down one row.
//
// When part of the piece is blocked and cutIfBlocked is set, the blocked cells are cut
// away and stay on the board as landed material; the rest becomes the new active piece
// and CheckDescent returns true. Otherwise, or when nothing is left to fall, the active
// piece is cleared and CheckDescent returns false.
func (b *Board) CheckDescent(cutIfBlocked bool) bool {
	if b.active == nil {
		return false
	}
	p := *b.active
	for {
		hits, grounded := b.collisions(p)
		if grounded && !cutIfBlocked {
			b.active = nil
			return false
		}
		if !slices.ContainsFunc(hits, func(h uint64) bool { return h != 0 }) {
			b.active = &p
			return true
		}
		if !cutIfBlocked {
			b.active = nil
			return false
		}

		masks := slices.Clone(p.masks)
		for i := len(hits) - 1; i >= 0; i-- {
			if hits[i] != 0 {
				cutUpward(masks, hits[i], i)
			}
		}
		refined, err := reanchor(masks, p.x, p.y, p.width)
		if err != nil {
			b.active = nil
			return false
		}
		// Cells cut this round may now carry the cells above them.
		p = refined
	}
}

// Descend moves the active piece down one row. Call it after CheckDescent returns true.
func (b *Board) Descend() error {
	if b.active == nil {
		return ErrNoActivePiece
	}
	p := *b.active
	b.lift(p)
	if err := b.Put(p.Moved(0, 1)); err != nil {
		// Put writes nothing on failure, so restoring p cannot collide.
		_ = b.Put(p)
		return err
	}
	return nil
}
