package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the minimax move for the computer and returns the chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if !game.IsComputerTurn() {
		return 0, ErrNotBotTurn
	}

	cell := tictactoe.SelectMove(game.Board)

	if err := game.MakeTurn(cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "gameID", game.ID, "cell", cell, "status", game.Outcome().Status)

	return cell, nil
}
