package apperror

import "errors"

var (
	ErrInvalidIndex    = errors.New("cell index out of range")
	ErrInvalidSymbol   = errors.New("unknown cell symbol")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrSessionNotFound = errors.New("session not found")
	ErrCorruptState    = errors.New("corrupt game state")
)
