package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Replies with a corner to a center opening", func(t *testing.T) {
		// Given: a computer game where X took the center
		bot := NewBotService(newTestLogger())
		game := entity.NewGame("123", entity.ModeComputer)
		require.NoError(t, game.MakeTurn(4))

		// When: the bot makes its turn
		cell, err := bot.MakeTurn(game)

		// Then: O should hold the first corner and X is to move
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, entity.PlayerO, game.Board[0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: O can complete the middle row
		bot := NewBotService(newTestLogger())
		game := &entity.Game{
			ID:    "123",
			Board: entity.Board{entity.PlayerX, entity.PlayerX, entity.Empty, entity.PlayerO, entity.PlayerO, entity.Empty, entity.PlayerX, entity.Empty, entity.Empty},
			Turn:  entity.PlayerO,
			Mode:  entity.ModeComputer,
		}

		// When: the bot makes its turn
		cell, err := bot.MakeTurn(game)

		// Then: O should win
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: entity.PlayerO}, game.Outcome())
		assert.Equal(t, entity.Empty, game.Turn)
	})

	t.Run("Error when it is X's turn", func(t *testing.T) {
		bot := NewBotService(newTestLogger())
		game := entity.NewGame("123", entity.ModeComputer)

		_, err := bot.MakeTurn(game)

		require.ErrorIs(t, err, ErrNotBotTurn)
		assert.Equal(t, entity.NewBoard(), game.Board)
	})

	t.Run("Error in player versus player mode", func(t *testing.T) {
		bot := NewBotService(newTestLogger())
		game := entity.NewGame("123", entity.ModePvP)
		require.NoError(t, game.MakeTurn(4))

		_, err := bot.MakeTurn(game)

		require.ErrorIs(t, err, ErrNotBotTurn)
	})
}
