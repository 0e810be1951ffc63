package blocks

import "errors"

var (
	// ErrValueTooWide is returned when an integer needs more bits than a Row holds.
	ErrValueTooWide = errors.New("value too wide for row")
	// ErrIndexOutOfRange is returned by the cut operations for an index outside the piece.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyShape is returned when normalizing a piece leaves no set cell.
	// Callers should treat it as "piece fully consumed".
	ErrEmptyShape = errors.New("empty shape")
	// ErrOutOfBounds is returned by Put when the piece does not fit the board.
	ErrOutOfBounds = errors.New("piece out of bounds")
	// ErrSpaceOccupied is returned by Put when a target cell is already filled.
	ErrSpaceOccupied = errors.New("space occupied")
	// ErrNoActivePiece is returned by operations that need a falling piece.
	ErrNoActivePiece = errors.New("no active piece")
)
