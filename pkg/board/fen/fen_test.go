package fen_test

import (
	"testing"

	"github.com/K16858/mctschess/pkg/board"
	"github.com/K16858/mctschess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitial(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, 20, len(pos.LegalMoves()))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := fen.Decode("not a fen")
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, fen.Initial, fen.Encode(pos))
}

func TestEncodeAfterMoveChangesSideToMove(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.LegalMoves()
	require.NotEmpty(t, moves)
	pos.Make(moves[0])

	decoded, err := fen.Decode(fen.Encode(pos))
	require.NoError(t, err)
	assert.Equal(t, board.Black, decoded.SideToMove())
}
