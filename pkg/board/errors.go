package board

import "errors"

// Sentinel error kinds. Use errors.Is against these to classify a failure;
// the wrapped message carries the offending input.
var (
	// ErrInvalidFEN is returned when a FEN string is rejected. The position
	// being loaded is left unchanged.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrIllegalMove is returned when a UCI string does not name a legal
	// move in the current position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrUnmakeWithoutMake is returned when Unmake is called with an empty
	// undo stack.
	ErrUnmakeWithoutMake = errors.New("unmake without matching make")
	// ErrInvalidSquare is returned when a UCI coordinate falls outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")
)
