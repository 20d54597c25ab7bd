package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusDraw       = "draw"
)

// WinLines - rows, then columns, then diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [9]Mark

// Outcome is derived from a Board and never stored.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func NewBoard() Board {
	return Board{}
}

// Opponent returns the mark that moves after mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// ApplyMove - places mark on the cell, the board stays untouched on error.
func (that *Board) ApplyMove(index int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	if index < 0 || index >= len(that) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	that[index] = mark

	return nil
}

func (that Board) CheckWinner() (Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) Outcome() Outcome {
	if winner, ok := that.CheckWinner(); ok {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}
