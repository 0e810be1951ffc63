package game_test

import (
	"testing"

	"github.com/plus3/fallblock/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRegistry(t *testing.T) {
	r := game.NewRegistry(zaptest.NewLogger(t))
	assert.Equal(t, 0, r.Len())

	a, err := r.Create(game.DefaultConfig(), nil)
	require.NoError(t, err)
	b, err := r.Create(smallConfig(4, 4), game.NewCycleSource())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []uint64{a.ID, b.ID}, r.IDs())

	got, err := r.Get(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Equal(t, 4, got.Config().Columns)

	require.NoError(t, r.Delete(a.ID))
	_, err = r.Get(a.ID)
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
	assert.ErrorIs(t, r.Delete(a.ID), game.ErrSessionNotFound)
	assert.Equal(t, []uint64{b.ID}, r.IDs())
}

func TestRegistryCreateInvalid(t *testing.T) {
	r := game.NewRegistry(zaptest.NewLogger(t))
	_, err := r.Create(game.Config{}, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())

	// a failed create does not burn an id
	s, err := r.Create(game.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.ID)
}
