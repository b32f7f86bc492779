package board_test

import (
	"testing"

	"github.com/K16858/mctschess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClear(t *testing.T) {
	var bb board.Bitboard
	bb = bb.Set(board.E4)
	assert.True(t, bb.IsSet(board.E4))
	assert.Equal(t, 1, bb.PopCount())

	bb = bb.Set(board.A1)
	assert.Equal(t, 2, bb.PopCount())

	bb = bb.Clear(board.E4)
	assert.False(t, bb.IsSet(board.E4))
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitboardLSBPopLSB(t *testing.T) {
	bb := board.BitMask(board.C3) | board.BitMask(board.G7)
	assert.Equal(t, board.C3, bb.LSB())

	sq, rest := bb.PopLSB()
	assert.Equal(t, board.C3, sq)
	assert.Equal(t, board.G7, rest.LSB())

	var empty board.Bitboard
	assert.Equal(t, board.Square(board.NumSquares), empty.LSB())
}

func TestKnightAttacksCorner(t *testing.T) {
	attacks := board.KnightAttacks(board.A1)
	assert.ElementsMatch(t, []board.Square{board.B3, board.C2}, attacks.Squares())
}

func TestKingAttacksCenter(t *testing.T) {
	attacks := board.KingAttacks(board.E4)
	assert.Equal(t, 8, attacks.PopCount())
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	occ := board.BitMask(board.E5) | board.BitMask(board.B1)
	attacks := board.RookAttacks(board.E1, occ)

	// Up the e-file, the rook can see through e2..e5 and stops at the
	// blocker on e5 (e5 included, e6+ excluded).
	assert.True(t, attacks.IsSet(board.E5))
	assert.False(t, attacks.IsSet(board.E6))
	// Along rank 1, it stops at the blocker on b1 (b1 included, a1 excluded).
	assert.True(t, attacks.IsSet(board.B1))
	assert.False(t, attacks.IsSet(board.A1))
	assert.True(t, attacks.IsSet(board.H1))
}

func TestBishopAttacksDiagonal(t *testing.T) {
	attacks := board.BishopAttacks(board.D4, board.EmptyBitboard)
	for _, sq := range []board.Square{board.A1, board.G7, board.A7, board.G1} {
		assert.True(t, attacks.IsSet(sq), "expected %v in diagonal attacks", sq)
	}
	assert.False(t, attacks.IsSet(board.D5))
}

func TestPawnTables(t *testing.T) {
	// White pawn on its second rank has both single and double push.
	pushes := board.PawnPushes(board.White, board.E2)
	assert.True(t, pushes.IsSet(board.E3))
	assert.True(t, pushes.IsSet(board.E4))

	// White pawn on the seventh rank has no push target in the table
	// (promotion is handled by the move generator, not the table).
	last := board.PawnPushes(board.White, board.E7)
	assert.False(t, last.IsSet(board.E8))

	captures := board.PawnCaptures(board.White, board.E4)
	assert.ElementsMatch(t, []board.Square{board.D5, board.F5}, captures.Squares())
}
