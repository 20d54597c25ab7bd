package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// GameManager drives play sessions: human turns, computer replies, restarts.
type GameManager struct {
	logger *slog.Logger

	gameService gameService
	botService  botService

	locker *gameLocker
}

func NewGameManager(logger *slog.Logger, gameService gameService, botService botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameService: gameService,
		botService:  botService,

		locker: newGameLocker(),
	}
}

func (that *GameManager) CreateGame(ctx context.Context, mode string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", game.Mode)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays cell for the side to move; in computer mode the bot answers right away.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsComputerTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if outcome := game.Outcome(); outcome.IsTerminal() {
		log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner)
	}

	return game, nil
}

// RestartGame - clears the board and keeps the mode.
func (that *GameManager) RestartGame(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Restart()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", game.ID)

	return game, nil
}

// SetMode - switches between player and computer opponent, which restarts the game.
func (that *GameManager) SetMode(ctx context.Context, id, mode string) (*entity.Game, error) {
	if err := entity.ValidateMode(mode); err != nil {
		return nil, err
	}

	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Mode = mode
	game.Restart()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game mode changed", "gameID", game.ID, "mode", mode)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locker.Lock(id)
	defer unlock()

	if err := that.gameService.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
