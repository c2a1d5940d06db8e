package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9

	// NoMove is returned when the board has no empty cell left.
	NoMove = -1
)

// Board - 3x3 grid in row-major order, index 0 is top left.
type Board [BoardSize]string

// NewBoard - builds a board from request cells, where nil and "" both mean an empty cell.
func NewBoard(cells []*string) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	for i, cell := range cells {
		if cell == nil {
			continue
		}

		switch *cell {
		case EmptyCell, PlayerX, PlayerO:
			board[i] = *cell
		default:
			return board, fmt.Errorf("%w: cell %d holds unknown marker %q", apperror.ErrInvalidBoard, i, *cell)
		}
	}

	return board, nil
}

// EmptyCells - indices of all free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CheckMove - reports whether cell is on the board and still free.
func (that Board) CheckMove(cell int) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Opponent - the other player's mark.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
