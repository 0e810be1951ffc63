package render_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/plus3/fallblock/blocks"
	"github.com/plus3/fallblock/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	r, err := blocks.RowFromUint64(0b1010, 4)
	require.NoError(t, err)
	assert.Equal(t, "◼◻◼◻", render.Row(r))
	assert.Equal(t, "◻◻◻", render.Row(blocks.NewRow(3)))
}

func TestPiece(t *testing.T) {
	p := blocks.MustPiece([]uint64{2, 2, 3, 1}, 0, 1)
	assert.Equal(t, "◼◻\n◼◻\n◼◼\n◻◼", render.Piece(p))
}

func TestWriteBoard(t *testing.T) {
	b := blocks.NewBoard(3, 2)
	require.NoError(t, b.Put(blocks.MustPiece([]uint64{1}, 2, 1)))

	var buf bytes.Buffer
	require.NoError(t, render.WriteBoard(&buf, b))
	assert.Equal(t, "◻◻◻\n◻◻◼\n", buf.String())
}

func ExamplePiece() {
	p := blocks.MustPiece([]uint64{7, 2}, 0, 0)
	fmt.Println(render.Piece(p))
	// Output:
	// ◼◼◼
	// ◻◼◻
}
