package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-move/internal/config"
	"github.com/rocketscienceinc/tictactoe-move/internal/entity"
	"github.com/rocketscienceinc/tictactoe-move/internal/usecase"
)

var ErrBoardNotConfigured = errors.New("demo board is empty")

// RunApp - applies the configured demonstration move and prints the result
// followed by the board.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	board := entity.Board(conf.Demo.Board).Clone()
	if len(board) == 0 {
		return ErrBoardNotConfigured
	}

	move := entity.Move{
		Row:    conf.Demo.Row,
		Col:    conf.Demo.Col,
		Marker: conf.Demo.Marker,
	}

	moveUseCase := usecase.NewMoveUseCase(logger)

	var ok bool
	switch conf.Demo.Convention {
	case config.ConventionRowMajor:
		ok = moveUseCase.ApplyMove(board, move)
	default:
		ok = moveUseCase.PlayTurn(board, move)
	}

	log.Debug("demo finished", "convention", conf.Demo.Convention, "result", ok)

	if _, err := fmt.Fprintln(out, ok); err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}

	if _, err := fmt.Fprintln(out, board); err != nil {
		return fmt.Errorf("could not write board: %w", err)
	}

	return nil
}
