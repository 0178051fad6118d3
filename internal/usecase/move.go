package usecase

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-move/internal/entity"
	"github.com/rocketscienceinc/tictactoe-move/internal/tictactoe"
)

type MoveUseCase interface {
	// ApplyMove places the marker at board[move.Row][move.Col].
	ApplyMove(board entity.Board, move entity.Move) bool
	// PlayTurn places the marker at board[move.Col][move.Row].
	PlayTurn(board entity.Board, move entity.Move) bool
}

type moveUseCase struct {
	logger *slog.Logger
}

func NewMoveUseCase(logger *slog.Logger) MoveUseCase {
	return &moveUseCase{
		logger: logger.With("component", "move"),
	}
}

func (that *moveUseCase) ApplyMove(board entity.Board, move entity.Move) bool {
	return that.place(board, move.Row, move.Col, move)
}

func (that *moveUseCase) PlayTurn(board entity.Board, move entity.Move) bool {
	return that.place(board, move.Col, move.Row, move)
}

func (that *moveUseCase) place(board entity.Board, row, col int, move entity.Move) bool {
	log := that.logger.With("move", move.String(), "cell_row", row, "cell_col", col)

	if err := tictactoe.Place(board, row, col, move.Marker); err != nil {
		log.Debug("move rejected", "error", err)
		return false
	}

	log.Info("move applied")

	return true
}
