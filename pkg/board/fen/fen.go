// Package fen provides the standalone Decode/Encode entry points on top of
// board.Position's own SetFromFEN/FEN methods, mirroring the convenience
// wrapper callers that prefer a package-level function (rather than an
// already-constructed Position) commonly reach for.
package fen

import "github.com/K16858/mctschess/pkg/board"

// Initial is the standard opening position in FEN.
const Initial = board.StartFEN

// Decode parses fen into a new Position. Returns board.ErrInvalidFEN on
// malformed input.
func Decode(fen string) (*board.Position, error) {
	return board.NewPositionFromFEN(fen)
}

// Encode renders pos in standard FEN notation.
func Encode(pos *board.Position) string {
	return pos.FEN()
}
