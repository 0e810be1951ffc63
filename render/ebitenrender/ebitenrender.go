// Package ebitenrender draws board rows onto an ebiten image.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/fallblock/blocks"
)

// Style controls cell size and colours.
type Style struct {
	CellSize int
	Filled   color.Color
	Empty    color.Color
	Active   color.Color
	Border   color.Color
}

func DefaultStyle() Style {
	return Style{
		CellSize: 24,
		Filled:   color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
		Empty:    color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Active:   color.RGBA{R: 0xff, G: 0xcb, B: 0x00, A: 0xff},
		Border:   color.Black,
	}
}

// Size returns the pixel size of a board of the given dimensions.
func (s Style) Size(columns, rows int) (int, int) {
	return columns * s.CellSize, rows * s.CellSize
}

// activeAt reports whether cell (x, y) belongs to the falling piece.
func activeAt(active *blocks.Piece, x, y int) bool {
	if active == nil {
		return false
	}
	row := y - active.Y()
	col := x - active.X()
	if row < 0 || row >= active.Length() || col < 0 || col >= active.Width() {
		return false
	}
	return active.Masks()[row]>>(active.Width()-1-col)&1 == 1
}

// Draw paints rows onto dst, highlighting the cells of active.
func (s Style) Draw(dst *ebiten.Image, rows []blocks.Row, active *blocks.Piece) {
	size := float32(s.CellSize)
	for y, r := range rows {
		for x := range r.Width() {
			clr := s.Empty
			switch {
			case activeAt(active, x, y):
				clr = s.Active
			case r.Bit(x):
				clr = s.Filled
			}
			px, py := float32(x)*size, float32(y)*size
			vector.DrawFilledRect(dst, px, py, size, size, clr, false)
			vector.StrokeRect(dst, px, py, size, size, 1, s.Border, false)
		}
	}
}
