package apperror

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrUnknownShape = errors.New("unknown shape")
	ErrEmptyBag     = errors.New("piece bag is empty")
)
