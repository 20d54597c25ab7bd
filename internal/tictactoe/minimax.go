package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// SelectMove - returns the cell that is minimax-optimal for the computer (O).
// The first cell reaching the best score wins, so ties resolve left to right.
// Panics when the board is already terminal.
func SelectMove(board entity.Board) int {
	if outcome := board.Outcome(); outcome.IsTerminal() {
		panic(fmt.Sprintf("tictactoe: select move on finished board (%s)", outcome.Status))
	}

	bestScore := math.MinInt
	move := -1

	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		board[i] = entity.ComputerMark
		score := Minimax(&board, false)
		board[i] = entity.Empty

		if score > bestScore {
			bestScore = score
			move = i
		}
	}

	return move
}

// Minimax - scores the position from O's point of view. Win and loss count the
// same regardless of how many moves away they are.
func Minimax(board *entity.Board, isMaximizing bool) int {
	switch outcome := board.Outcome(); outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == entity.ComputerMark {
			return scoreWin
		}
		return scoreLoss
	case entity.StatusDraw:
		return scoreDraw
	}

	if isMaximizing {
		best := math.MinInt
		for i := range board {
			if board[i] != entity.Empty {
				continue
			}

			board[i] = entity.ComputerMark
			best = max(best, Minimax(board, false))
			board[i] = entity.Empty
		}
		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		board[i] = entity.ComputerMark.Opponent()
		best = min(best, Minimax(board, true))
		board[i] = entity.Empty
	}
	return best
}
