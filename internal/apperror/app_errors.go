package apperror

import "errors"

var (
	ErrEmptyBoard   = errors.New("board has no rows")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrRaggedRow    = errors.New("row is shorter than the first row")
	ErrCellOccupied = errors.New("cell is already occupied")
)
