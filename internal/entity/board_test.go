package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	X = PlayerX
	O = PlayerO
	E = Empty
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell should be empty
	for i, cell := range board {
		assert.Equal(t, Empty, cell, "cell %d", i)
	}
	assert.Len(t, board.EmptyCells(), 9)
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Places mark on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X plays the center
		err := board.ApplyMove(4, PlayerX)

		// Then: the cell should hold X
		require.NoError(t, err)
		assert.Equal(t, Board{E, E, E, E, X, E, E, E, E}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds cell 0
		board := Board{X, E, E, E, E, E, E, E, E}

		// When: O tries to take the same cell
		err := board.ApplyMove(0, PlayerO)

		// Then: ErrInvalidMove should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: the board should remain unchanged
		assert.Equal(t, Board{X, E, E, E, E, E, E, E, E}, board)
	})

	t.Run("Error on index out of range", func(t *testing.T) {
		for _, index := range []int{-1, 9, 20} {
			// Given: an empty board
			board := NewBoard()

			// When: an index outside 0..8 is passed
			err := board.ApplyMove(index, PlayerX)

			// Then: ErrInvalidMove should be returned and nothing placed
			require.ErrorIs(t, err, apperror.ErrInvalidMove, "index %d", index)
			assert.Equal(t, NewBoard(), board)
		}
	})

	t.Run("Error on unknown mark", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: an empty mark is placed
		err := board.ApplyMove(0, Empty)

		// Then: ErrInvalidMove should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_CheckWinner(t *testing.T) {
	for _, line := range WinLines {
		for _, mark := range []Mark{PlayerX, PlayerO} {
			// Given: a board where only this line is filled with mark
			var board Board
			for _, i := range line {
				board[i] = mark
			}

			// When: checking for a winner
			winner, ok := board.CheckWinner()

			// Then: mark should win
			require.True(t, ok, "line %v", line)
			assert.Equal(t, mark, winner, "line %v", line)
		}
	}

	t.Run("No winner without three in a row", func(t *testing.T) {
		// Given: a board with no complete line
		board := Board{X, O, X, E, O, E, X, E, E}

		// When: checking for a winner
		winner, ok := board.CheckWinner()

		// Then: nobody should win
		assert.False(t, ok)
		assert.Equal(t, Empty, winner)
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		_, ok := NewBoard().CheckWinner()
		assert.False(t, ok)
	})

	t.Run("First complete line in enumeration order wins", func(t *testing.T) {
		// Given: unreachable boards with two complete lines
		rows := Board{O, O, O, E, E, E, X, X, X}
		columns := Board{X, E, O, X, E, O, X, E, O}

		// When: checking for a winner
		rowWinner, _ := rows.CheckWinner()
		columnWinner, _ := columns.CheckWinner()

		// Then: the line enumerated first should win
		assert.Equal(t, PlayerO, rowWinner)
		assert.Equal(t, PlayerX, columnWinner)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		board := Board{X, O, X, X, O, O, O, X, X}
		assert.True(t, board.IsFull())
	})

	t.Run("Any empty cell means not full", func(t *testing.T) {
		for i := 0; i < 9; i++ {
			// Given: a full board with cell i cleared
			board := Board{X, O, X, X, O, O, O, X, X}
			board[i] = Empty

			// Then: it should not be full
			assert.False(t, board.IsFull(), "cell %d", i)
		}
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("In progress on empty board", func(t *testing.T) {
		assert.Equal(t, Outcome{Status: StatusInProgress}, NewBoard().Outcome())
	})

	t.Run("X completes the top row", func(t *testing.T) {
		// Given: X and O have two in a row each
		board := Board{X, X, E, O, O, E, E, E, E}

		// When: X plays index 2
		require.NoError(t, board.ApplyMove(2, PlayerX))

		// Then: X should be reported as winner
		winner, ok := board.CheckWinner()
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
		assert.Equal(t, Outcome{Status: StatusWin, Winner: PlayerX}, board.Outcome())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no line satisfied
		board := Board{X, O, X, X, O, O, O, X, X}

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: it should be a draw
		assert.Equal(t, Outcome{Status: StatusDraw}, outcome)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Win on the last cell beats draw", func(t *testing.T) {
		board := Board{X, O, X, O, X, O, O, X, X}
		assert.Equal(t, Outcome{Status: StatusWin, Winner: PlayerX}, board.Outcome())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{X, E, O, E, X, E, E, O, E}
	assert.Equal(t, []int{1, 3, 5, 6, 8}, board.EmptyCells())
	assert.Empty(t, Board{X, O, X, X, O, O, O, X, X}.EmptyCells())
}
