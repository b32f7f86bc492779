// Package eval contains static position evaluation, adapted from material
// counting into the prior/value plugin shapes pkg/mcts accepts.
package eval

import (
	"fmt"

	"github.com/K16858/mctschess/pkg/board"
)

// Pawns is a signed evaluation in units of a pawn.
type Pawns float64

func (p Pawns) String() string {
	return fmt.Sprintf("%.2f", p)
}

// Evaluator is a static position evaluator, scored from the side to move's
// perspective.
type Evaluator interface {
	Evaluate(pos *board.Position) Pawns
}

// Material returns the nominal material advantage for the side to move.
type Material struct{}

func (Material) Evaluate(pos *board.Position) Pawns {
	turn := pos.SideToMove()

	var pawns Pawns
	for k := board.Pawn; k <= board.King; k++ {
		pawns += Pawns(pos.Piece(turn, k).PopCount()-pos.Piece(turn.Opponent(), k).PopCount()) * NominalValue(k)
	}
	return pawns
}

// NominalValue is the absolute nominal value in pawns of a piece kind. The
// king has an arbitrary value of 100 pawns, so that it outweighs any other
// material.
func NominalValue(k board.PieceKind) Pawns {
	switch k {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of playing m.
func NominalValueGain(m board.Move) Pawns {
	gain := Pawns(0)
	if m.Captured.IsValid() {
		gain += NominalValue(m.Captured)
	}
	if m.Promotion.IsValid() {
		gain += NominalValue(m.Promotion) - NominalValue(board.Pawn)
	}
	return gain
}
