package eval

import (
	"testing"

	"github.com/K16858/mctschess/pkg/board"
	"github.com/K16858/mctschess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) *board.Position {
	t.Helper()
	pos, err := fen.Decode(s)
	require.NoError(t, err)
	return pos
}

func TestMaterialEvaluateStartingPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	assert.Equal(t, Pawns(0), Material{}.Evaluate(pos))
}

func TestMaterialEvaluateFavorsSideToMoveWithExtraQueen(t *testing.T) {
	// White is up a queen and it's White to move: strongly positive.
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.Equal(t, Pawns(9), Material{}.Evaluate(pos))
}

func TestMaterialEvaluateIsFromSideToMovePerspective(t *testing.T) {
	// Same material imbalance, but it's Black to move: score flips sign.
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.Equal(t, Pawns(-9), Material{}.Evaluate(pos))
}

func TestNominalValueGainCapture(t *testing.T) {
	m := board.Move{From: board.E4, To: board.D5, Mover: board.Pawn, Captured: board.Knight}
	assert.Equal(t, Pawns(3), NominalValueGain(m))
}

func TestNominalValueGainPromotion(t *testing.T) {
	m := board.Move{From: board.E7, To: board.E8, Mover: board.Pawn, Captured: board.NoPiece, Promotion: board.Queen}
	assert.Equal(t, Pawns(8), NominalValueGain(m)) // queen (9) minus the pawn it replaces (1)
}

func TestNominalValueGainQuietMoveIsZero(t *testing.T) {
	m := board.Move{From: board.G1, To: board.F3, Mover: board.Knight, Captured: board.NoPiece, Promotion: board.NoPiece}
	assert.Equal(t, Pawns(0), NominalValueGain(m))
}

func TestValueFnIsBounded(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	v := Material{}.ValueFn(pos)
	assert.True(t, v > 0 && v < 1)
}

func TestPriorFnFavorsCapturesOverQuietMoves(t *testing.T) {
	capture := board.Move{From: board.E4, To: board.D5, Mover: board.Pawn, Captured: board.Knight, Promotion: board.NoPiece}
	quiet := board.Move{From: board.G1, To: board.F3, Mover: board.Knight, Captured: board.NoPiece, Promotion: board.NoPiece}

	out := Material{}.PriorFn(board.NewPosition(), []board.Move{quiet, capture})
	require.Len(t, out, 2)
	assert.Greater(t, out[1], out[0])
}
