package apperror

import "errors"

var (
	ErrOutOfRange        = errors.New("coordinates are out of range")
	ErrAlreadyShot       = errors.New("cell is already shot")
	ErrInvalidPlacement  = errors.New("invalid ship placement")
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidResult     = errors.New("invalid shot result")
	ErrProtocolViolation = errors.New("protocol violation")
	ErrTransport         = errors.New("transport failure")
	ErrInvalidArgs       = errors.New("invalid arguments")
	ErrGameNotFound      = errors.New("game not found")
)
