package game

//go:generate mockgen -destination ../mocks/game/piecesource.go -package mock_game github.com/plus3/fallblock/game PieceSource

import (
	"math/rand/v2"

	"github.com/plus3/fallblock/blocks"
)

// PieceSource supplies the pieces a session spawns. Anchors of returned pieces are
// ignored; the session places them itself.
type PieceSource interface {
	Next() (blocks.Piece, error)
}

// Shapes are the seven tetrominoes in spawn orientation.
var Shapes = []blocks.Piece{
	blocks.MustPiece([]uint64{0b1111}, 0, 0),       // I
	blocks.MustPiece([]uint64{0b11, 0b11}, 0, 0),   // O
	blocks.MustPiece([]uint64{0b010, 0b111}, 0, 0), // T
	blocks.MustPiece([]uint64{0b011, 0b110}, 0, 0), // S
	blocks.MustPiece([]uint64{0b110, 0b011}, 0, 0), // Z
	blocks.MustPiece([]uint64{0b100, 0b111}, 0, 0), // J
	blocks.MustPiece([]uint64{0b001, 0b111}, 0, 0), // L
}

func rotated(p blocks.Piece, turns int) (blocks.Piece, error) {
	var err error
	for range turns % 4 {
		if p, err = p.RotateCCW(false); err != nil {
			return blocks.Piece{}, err
		}
	}
	return blocks.NewPiece(p.Masks(), 0, 0)
}

// CycleSource hands out its shapes in order, turning each one a further quarter
// turn every time the list wraps around.
type CycleSource struct {
	shapes []blocks.Piece
	next   int
}

func NewCycleSource(shapes ...blocks.Piece) *CycleSource {
	if len(shapes) == 0 {
		shapes = Shapes
	}
	return &CycleSource{shapes: shapes}
}

func (s *CycleSource) Next() (blocks.Piece, error) {
	i := s.next
	s.next++
	return rotated(s.shapes[i%len(s.shapes)], i/len(s.shapes))
}

// RandomSource picks a shape and orientation at random.
type RandomSource struct {
	rand   *rand.Rand
	shapes []blocks.Piece
}

func NewRandomSource(seed uint64, shapes ...blocks.Piece) *RandomSource {
	if len(shapes) == 0 {
		shapes = Shapes
	}
	return &RandomSource{
		rand:   rand.New(rand.NewPCG(seed, seed)),
		shapes: shapes,
	}
}

func (s *RandomSource) Next() (blocks.Piece, error) {
	return rotated(s.shapes[s.rand.IntN(len(s.shapes))], s.rand.IntN(4))
}
