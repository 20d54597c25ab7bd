package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a new game", func(t *testing.T) {
		// Given: a game service over an empty store
		gameRepo := repository.NewMemoryGameRepository()
		gameService := NewGameService(gameRepo)

		// When: a computer game is created
		game, err := gameService.CreateGame(ctx, entity.ModeComputer)

		// Then: the game should have a uuid and be retrievable
		require.NoError(t, err)
		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)

		stored, err := gameService.GetGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Error on unknown mode", func(t *testing.T) {
		gameService := NewGameService(repository.NewMemoryGameRepository())

		game, err := gameService.CreateGame(ctx, "hard")

		require.ErrorIs(t, err, apperror.ErrUnknownMode)
		assert.Nil(t, game)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	// Given: a stored game
	gameService := NewGameService(repository.NewMemoryGameRepository())
	game, err := gameService.CreateGame(ctx, entity.ModePvP)
	require.NoError(t, err)

	// When: the game is deleted
	require.NoError(t, gameService.DeleteGame(ctx, game.ID))

	// Then: it can no longer be found
	_, err = gameService.GetGameByID(ctx, game.ID)
	require.ErrorIs(t, err, repository.ErrGameNotFound)
}
