package game

import "errors"

var (
	ErrOutOfBounds     = errors.New("square out of bounds")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrBadNotation     = errors.New("bad notation")
)
