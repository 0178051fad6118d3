package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-move/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-move/internal/entity"
)

// Place writes marker into board[row][col]. The board is left untouched when
// an error is returned.
func Place(board entity.Board, row, col int, marker string) error {
	if err := validateMove(board, row, col); err != nil {
		return err
	}

	board[row][col] = marker

	return nil
}

// ApplyMove reports whether marker was placed at board[row][col].
func ApplyMove(board entity.Board, row, col int, marker string) bool {
	return Place(board, row, col, marker) == nil
}

// PlayTurn keeps the historical argument order, where the first coordinate
// selects the position inside a row and the second selects the row: the
// target cell is board[c][r].
func PlayTurn(board entity.Board, r, c int, marker string) bool {
	return ApplyMove(board, c, r, marker)
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, row, col int) error {
	if len(board) == 0 {
		return apperror.ErrEmptyBoard
	}

	maxRow := len(board) - 1
	maxCol := len(board[0]) - 1

	if row > maxRow || col > maxCol {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if row < 0 || col < 0 {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	// only row 0 is used for the column bound
	if col >= len(board[row]) {
		return fmt.Errorf("%w: row %d has %d cells", apperror.ErrRaggedRow, row, len(board[row]))
	}

	if board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}
