package entity

import (
	"encoding/json"
	"fmt"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Board is a caller-owned grid of markers. Rows are expected to be of equal
// length; the first row defines the column count.
type Board [][]string

// Move is a single placement request.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Marker string `json:"marker"`
}

func NewBoard(rows, cols int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]string, cols)
	}

	return board
}

// Clone returns a deep copy of the board.
func (that Board) Clone() Board {
	if that == nil {
		return nil
	}

	clone := make(Board, len(that))
	for i, row := range that {
		clone[i] = append([]string(nil), row...)
	}

	return clone
}

func (that Board) Equal(other Board) bool {
	if len(that) != len(other) {
		return false
	}

	for i := range that {
		if len(that[i]) != len(other[i]) {
			return false
		}

		for j := range that[i] {
			if that[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders the board as a nested-sequence literal.
func (that Board) String() string {
	if that == nil {
		return "[]"
	}

	encoded, err := json.Marshal([][]string(that))
	if err != nil {
		return fmt.Sprintf("%q", [][]string(that))
	}

	return string(encoded)
}

func (that Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)", that.Marker, that.Row, that.Col)
}
