package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrUnknownMode  = errors.New("unknown game mode")
)
