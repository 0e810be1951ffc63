package blocks_test

import (
	"testing"

	"github.com/plus3/fallblock/blocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowValues(b *blocks.Board) []uint64 {
	out := make([]uint64, b.Height())
	for i, r := range b.Rows() {
		out[i] = r.Uint64()
	}
	return out
}

func TestNewBoard(t *testing.T) {
	b := blocks.NewBoard(4, 6)
	assert.Equal(t, 4, b.Columns())
	assert.Equal(t, 6, b.Height())
	assert.Len(t, b.Rows(), 6)
	for _, r := range b.Rows() {
		assert.Equal(t, 4, r.Width())
		assert.True(t, r.IsZero())
	}
	_, ok := b.Active()
	assert.False(t, ok)

	assert.Panics(t, func() { blocks.NewBoard(4, 0) })
	assert.Panics(t, func() { blocks.NewBoard(0, 4) })
}

func TestPut(t *testing.T) {
	b := blocks.NewBoard(4, 4)
	p := blocks.MustPiece([]uint64{7, 2}, 1, 1)

	require.NoError(t, b.Put(p))
	assert.Equal(t, []uint64{0, 0b0111, 0b0010, 0}, rowValues(b))

	active, ok := b.Active()
	require.True(t, ok)
	assert.True(t, active.Equal(p))
}

func TestPutOutOfBounds(t *testing.T) {
	b := blocks.NewBoard(4, 4)
	tests := map[string]blocks.Piece{
		"right edge": blocks.MustPiece([]uint64{3}, 3, 0),
		"left edge":  blocks.MustPiece([]uint64{3}, -1, 0),
		"below":      blocks.MustPiece([]uint64{1, 1}, 0, 3),
	}
	for name, p := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, b.Put(p), blocks.ErrOutOfBounds)
		})
	}
	assert.ErrorIs(t, b.Put(blocks.Piece{}), blocks.ErrEmptyShape)
	assert.Equal(t, []uint64{0, 0, 0, 0}, rowValues(b))
}

func TestPutOccupiedWritesNothing(t *testing.T) {
	b := blocks.NewBoard(4, 4)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1}, 0, 3)))

	err := b.Put(blocks.MustPiece([]uint64{1, 1}, 0, 2))
	assert.ErrorIs(t, err, blocks.ErrSpaceOccupied)
	assert.Equal(t, []uint64{0, 0, 0, 0b1000}, rowValues(b))

	// cells beside terrain inside the bounding box are fine
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{2, 1}, 0, 2)))
	assert.Equal(t, []uint64{0, 0, 0b1000, 0b1100}, rowValues(b))
}

func TestPutAboveBoard(t *testing.T) {
	b := blocks.NewBoard(3, 3)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1, 1, 1}, 2, -2)))
	assert.Equal(t, []uint64{0b001, 0, 0}, rowValues(b))
}

func TestCheckDescentToFloor(t *testing.T) {
	b := blocks.NewBoard(4, 6)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1}, 0, 0)))

	for range 5 {
		require.True(t, b.CheckDescent(true))
		require.NoError(t, b.Descend())
	}
	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, 5, p.Y())

	assert.False(t, b.CheckDescent(true))
	_, ok = b.Active()
	assert.False(t, ok)
	assert.Equal(t, []uint64{0, 0, 0, 0, 0, 0b1000}, rowValues(b))
}

func TestCheckDescentGroundedWithoutCut(t *testing.T) {
	b := blocks.NewBoard(2, 2)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{3}, 0, 1)))
	assert.False(t, b.CheckDescent(false))
	_, ok := b.Active()
	assert.False(t, ok)
	assert.Equal(t, []uint64{0, 0b11}, rowValues(b))
}

func TestCheckDescentSplitsOnUnevenTerrain(t *testing.T) {
	b := blocks.NewBoard(4, 4)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1}, 0, 3)))
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{3}, 0, 2)))

	// without cutting, any blocked cell stops the whole piece
	blocked := blocks.NewBoard(4, 4)
	require.NoError(t, blocked.Put(blocks.MustPiece([]uint64{1}, 0, 3)))
	require.NoError(t, blocked.Put(blocks.MustPiece([]uint64{3}, 0, 2)))
	assert.False(t, blocked.CheckDescent(false))

	require.True(t, b.CheckDescent(true))
	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, 1, p.X())
	assert.Equal(t, 2, p.Y())
	assert.Equal(t, []uint64{1}, p.Masks())

	require.NoError(t, b.Descend())
	assert.Equal(t, []uint64{0, 0, 0b1000, 0b1100}, rowValues(b))

	assert.False(t, b.CheckDescent(true))
}

func TestCheckDescentCascades(t *testing.T) {
	// the cells of a column rest on whatever was cut beneath them
	b := blocks.NewBoard(2, 3)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1, 1, 1}, 1, 0)))

	assert.False(t, b.CheckDescent(true))
	_, ok := b.Active()
	assert.False(t, ok)
	assert.Equal(t, []uint64{1, 1, 1}, rowValues(b))
}

func TestCheckDescentOverhangKeepsFalling(t *testing.T) {
	// ◻◼◼
	// ◼◼◻
	b := blocks.NewBoard(3, 3)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{3, 6}, 0, 1)))

	require.True(t, b.CheckDescent(true))
	p, _ := b.Active()
	assert.Equal(t, []uint64{1}, p.Masks())
	assert.Equal(t, 2, p.X())
	assert.Equal(t, 1, p.Y())

	require.NoError(t, b.Descend())
	assert.Equal(t, []uint64{0, 0b010, 0b111}, rowValues(b))
	assert.Equal(t, []int{2}, b.FullRows())
}

func TestCheckDescentHiddenRows(t *testing.T) {
	b := blocks.NewBoard(2, 3)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1}, 0, 0)))
	// ◼◻ above the board
	// ◻◼ on row 0
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{2, 1}, 0, -1)))
	assert.False(t, b.CheckDescent(false))
}

func TestCheckDescentWithoutPiece(t *testing.T) {
	b := blocks.NewBoard(2, 2)
	assert.False(t, b.CheckDescent(true))
	assert.ErrorIs(t, b.Descend(), blocks.ErrNoActivePiece)
}

func TestDescend(t *testing.T) {
	b := blocks.NewBoard(3, 4)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{7, 2}, 0, -1)))
	assert.Equal(t, []uint64{0b010, 0, 0, 0}, rowValues(b))

	require.NoError(t, b.Descend())
	assert.Equal(t, []uint64{0b111, 0b010, 0, 0}, rowValues(b))

	require.NoError(t, b.Descend())
	require.NoError(t, b.Descend())
	assert.Equal(t, []uint64{0, 0, 0b111, 0b010}, rowValues(b))

	// descending past the floor is refused and leaves the piece in place
	assert.ErrorIs(t, b.Descend(), blocks.ErrOutOfBounds)
	assert.Equal(t, []uint64{0, 0, 0b111, 0b010}, rowValues(b))
	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, 2, p.Y())
}

func TestFullRowsAndReset(t *testing.T) {
	b := blocks.NewBoard(2, 2)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{3}, 0, 1)))
	assert.Equal(t, []int{1}, b.FullRows())

	b.Reset()
	assert.Empty(t, b.FullRows())
	assert.Equal(t, []uint64{0, 0}, rowValues(b))
	_, ok := b.Active()
	assert.False(t, ok)
}

func BenchmarkCheckDescent(b *testing.B) {
	piece := blocks.MustPiece([]uint64{2, 2, 3}, 4, 0)
	for b.Loop() {
		board := blocks.NewBoard(10, 20)
		_ = board.Put(piece)
		for board.CheckDescent(true) {
			_ = board.Descend()
		}
	}
}
