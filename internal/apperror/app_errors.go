package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfBounds    = errors.New("coordinates are out of bounds")
	ErrInvalidMark    = errors.New("mark must not be empty")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrInvalidInput   = errors.New("input must be two non-negative integers separated by a comma")
	ErrInputClosed    = errors.New("input stream closed")
	ErrPlayerNotFound = errors.New("player not found")
)
