package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, id string) (*entity.Game, error)
	SetMode(ctx context.Context, id, mode string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	ID     string       `json:"id"`
	Board  entity.Board `json:"board"`
	Turn   entity.Mark  `json:"turn"`
	Mode   string       `json:"mode"`
	Status string       `json:"status"`
	Winner entity.Mark  `json:"winner,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func newHandlers(logger *slog.Logger, games gameUseCase) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	// an empty body starts a game between two players
	req := modeRequest{Mode: entity.ModePvP}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Mode)
	if err != nil {
		that.handleError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	id, ok := that.gameID(w, r)
	if !ok {
		return
	}

	game, err := that.games.GetGame(r.Context(), id)
	if err != nil {
		that.handleError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	id, ok := that.gameID(w, r)
	if !ok {
		return
	}

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeError(w, http.StatusBadRequest, "cell is required")
		return
	}

	game, err := that.games.MakeTurn(r.Context(), id, *req.Cell)
	if err != nil {
		that.handleError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) restartGame(w http.ResponseWriter, r *http.Request) {
	id, ok := that.gameID(w, r)
	if !ok {
		return
	}

	game, err := that.games.RestartGame(r.Context(), id)
	if err != nil {
		that.handleError(w, "restartGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) setMode(w http.ResponseWriter, r *http.Request) {
	id, ok := that.gameID(w, r)
	if !ok {
		return
	}

	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	game, err := that.games.SetMode(r.Context(), id, req.Mode)
	if err != nil {
		that.handleError(w, "setMode", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := that.gameID(w, r)
	if !ok {
		return
	}

	if err := that.games.DeleteGame(r.Context(), id); err != nil {
		that.handleError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// gameID - game ids are uuids, anything else cannot exist.
func (that *handlers) gameID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		that.writeError(w, http.StatusNotFound, repository.ErrGameNotFound.Error())
		return "", false
	}

	return id, true
}

func (that *handlers) handleError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.writeError(w, http.StatusNotFound, repository.ErrGameNotFound.Error())
	case errors.Is(err, apperror.ErrInvalidMove):
		that.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperror.ErrGameFinished):
		that.writeError(w, http.StatusConflict, apperror.ErrGameFinished.Error())
	case errors.Is(err, apperror.ErrUnknownMode):
		that.writeError(w, http.StatusBadRequest, apperror.ErrUnknownMode.Error())
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (that *handlers) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func newGameResponse(game *entity.Game) gameResponse {
	outcome := game.Outcome()

	return gameResponse{
		ID:     game.ID,
		Board:  game.Board,
		Turn:   game.Turn,
		Mode:   game.Mode,
		Status: outcome.Status,
		Winner: outcome.Winner,
	}
}
