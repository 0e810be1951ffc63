// Package render turns rows, pieces and boards into text, one glyph per cell.
package render

import (
	"io"
	"strings"

	"github.com/plus3/fallblock/blocks"
)

const (
	Filled = '◼'
	Empty  = '◻'
)

// Row renders a row left to right.
func Row(r blocks.Row) string {
	var sb strings.Builder
	writeRow(&sb, r)
	return sb.String()
}

func writeRow(sb *strings.Builder, r blocks.Row) {
	for i := range r.Width() {
		if r.Bit(i) {
			sb.WriteRune(Filled)
		} else {
			sb.WriteRune(Empty)
		}
	}
}

// Rows renders rows top to bottom, one line each.
func Rows(rows []blocks.Row) string {
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, r)
	}
	return sb.String()
}

// Piece renders the bounding box of p, ignoring its anchor.
func Piece(p blocks.Piece) string {
	rows := make([]blocks.Row, 0, p.Length())
	for _, m := range p.Masks() {
		r, err := blocks.RowFromUint64(m, p.Width())
		if err != nil {
			// Normalized masks always fit the piece width.
			panic(err)
		}
		rows = append(rows, r)
	}
	return Rows(rows)
}

// Board renders every row of b.
func Board(b *blocks.Board) string {
	return Rows(b.Rows())
}

// WriteBoard writes the rendered board followed by a newline.
func WriteBoard(w io.Writer, b *blocks.Board) error {
	_, err := io.WriteString(w, Board(b)+"\n")
	return err
}
