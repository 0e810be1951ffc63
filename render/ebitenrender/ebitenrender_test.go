package ebitenrender

import (
	"testing"

	"github.com/plus3/fallblock/blocks"
	"github.com/stretchr/testify/assert"
)

func TestActiveAt(t *testing.T) {
	// ◼◼◼
	// ◻◼◻
	p := blocks.MustPiece([]uint64{7, 2}, 2, 1)

	assert.True(t, activeAt(&p, 2, 1))
	assert.True(t, activeAt(&p, 4, 1))
	assert.True(t, activeAt(&p, 3, 2))
	assert.False(t, activeAt(&p, 2, 2))
	assert.False(t, activeAt(&p, 1, 1))
	assert.False(t, activeAt(&p, 3, 3))
	assert.False(t, activeAt(nil, 2, 1))
}

func TestSize(t *testing.T) {
	w, h := DefaultStyle().Size(10, 20)
	assert.Equal(t, 240, w)
	assert.Equal(t, 480, h)
}
