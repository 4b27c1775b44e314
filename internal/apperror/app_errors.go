package apperror

import "errors"

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveGame     = errors.New("no active game")
	ErrNotFound         = errors.New("not found")
)
