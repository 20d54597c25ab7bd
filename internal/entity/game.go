package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	ModePvP      = "pvp"
	ModeComputer = "computer"
)

// ComputerMark - the computer always plays second.
const ComputerMark = PlayerO

// Game is one play session owned by its caller.
type Game struct {
	ID    string `json:"id"`
	Board Board  `json:"board"`
	Turn  Mark   `json:"turn"`
	Mode  string `json:"mode"`
}

func NewGame(id, mode string) *Game {
	return &Game{
		ID:    id,
		Board: NewBoard(),
		Turn:  PlayerX,
		Mode:  mode,
	}
}

func ValidateMode(mode string) error {
	switch mode {
	case ModePvP, ModeComputer:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == ModeComputer
}

// IsComputerTurn reports whether the bot should move next.
func (that *Game) IsComputerTurn() bool {
	return that.IsWithComputer() && that.Turn == ComputerMark && !that.IsFinished()
}

// MakeTurn - places the mark whose turn it is and passes the turn on.
func (that *Game) MakeTurn(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.Board.ApplyMove(cell, that.Turn); err != nil {
		return err
	}

	if that.IsFinished() {
		that.Turn = Empty
		return nil
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

// Restart - clears the board and keeps the mode.
func (that *Game) Restart() {
	that.Board = NewBoard()
	that.Turn = PlayerX
}
