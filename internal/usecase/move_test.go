package usecase

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-move/internal/entity"
)

func newTestUseCase(t *testing.T) (MoveUseCase, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewMoveUseCase(logger), buf
}

func TestMoveUseCase_ApplyMove(t *testing.T) {
	t.Run("Applies move to empty cell", func(t *testing.T) {
		// Given: a use case and an empty board
		useCase, logs := newTestUseCase(t)
		board := entity.NewBoard(3, 3)

		// When: X moves to row 0, col 2
		ok := useCase.ApplyMove(board, entity.Move{Row: 0, Col: 2, Marker: entity.PlayerX})

		// Then: the move is applied and logged
		require.True(t, ok)
		assert.Equal(t, entity.PlayerX, board[0][2])
		assert.Contains(t, logs.String(), "move applied")
		assert.Contains(t, logs.String(), `"component":"move"`)
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		// Given: a board with an occupied cell
		useCase, logs := newTestUseCase(t)
		board := entity.Board{{entity.PlayerO, ""}, {"", ""}}

		// When: X tries to take it
		ok := useCase.ApplyMove(board, entity.Move{Row: 0, Col: 0, Marker: entity.PlayerX})

		// Then: the move is rejected with the reason logged
		require.False(t, ok)
		assert.Equal(t, entity.Board{{entity.PlayerO, ""}, {"", ""}}, board)
		assert.Contains(t, logs.String(), "move rejected")
		assert.Contains(t, logs.String(), "cell is already occupied")
	})

	t.Run("Rejects out of bounds", func(t *testing.T) {
		useCase, logs := newTestUseCase(t)
		board := entity.NewBoard(3, 3)

		ok := useCase.ApplyMove(board, entity.Move{Row: 3, Col: 0, Marker: entity.PlayerX})

		require.False(t, ok)
		assert.Equal(t, entity.NewBoard(3, 3), board)
		assert.Contains(t, logs.String(), "cell is out of bounds")
	})
}

func TestMoveUseCase_PlayTurn(t *testing.T) {
	// Given: the demonstration board
	useCase, _ := newTestUseCase(t)
	board := entity.Board{{"o", "", ""}, {"x", "o", ""}, {"", "", "o"}}

	// When: X plays with row 2 and col 1 in the historical order
	ok := useCase.PlayTurn(board, entity.Move{Row: 2, Col: 1, Marker: "X"})

	// Then: board[1][2] holds the marker
	require.True(t, ok)
	assert.Equal(t, entity.Board{{"o", "", ""}, {"x", "o", "X"}, {"", "", "o"}}, board)
}
