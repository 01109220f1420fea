package engine

import "errors"

// Errors returned by the engine. Call sites wrap them with context; test
// with errors.Is.
var (
	// ErrOutOfBounds means a coordinate lies outside the grid. It is a
	// programming error on the caller's side; coordinates are never clamped.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidMove means a swap was requested between cells that are not
	// orthogonal neighbours. The grid is left untouched.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInitializationFailure means a match-free board could not be built.
	ErrInitializationFailure = errors.New("board initialization failed")
)
