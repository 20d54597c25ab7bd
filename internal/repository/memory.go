package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memGame struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

// NewMemoryGameRepository - keeps sessions in process memory for the lifetime of the server.
func NewMemoryGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return &game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
