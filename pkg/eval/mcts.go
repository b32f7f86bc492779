package eval

import (
	"math"

	"github.com/K16858/mctschess/pkg/board"
)

// scale is the number of pawns of advantage that squash to roughly tanh(1),
// chosen so a lone extra minor piece (3 pawns) reads as a clear but not
// saturated edge.
const scale = 4.0

// ValueFn adapts m into an mcts.ValueFn: material in pawns, squashed through
// tanh into [-1, 1] from the side to move's perspective.
func (m Material) ValueFn(pos *board.Position) float64 {
	return math.Tanh(float64(m.Evaluate(pos)) / scale)
}

// PriorFn adapts m into an mcts.PriorFn: moves are weighted by
// exp(material gain), so captures and promotions dominate the prior mass
// the way they dominate move ordering in an alpha-beta search, without
// requiring a trained policy network.
func (m Material) PriorFn(pos *board.Position, moves []board.Move) []float64 {
	out := make([]float64, len(moves))
	for i, mv := range moves {
		out[i] = math.Exp(float64(NominalValueGain(mv)))
	}
	return out
}
