package mcts

import (
	"math/rand"

	"github.com/K16858/mctschess/pkg/board"
)

// ChildVisit pairs a root move with how many times it was visited.
type ChildVisit struct {
	Move   board.Move
	Visits int
}

// Result is the outcome of a completed Run.
type Result struct {
	Children   []ChildVisit
	RootValue  float64
	RootVisits int
}

// BestMove returns the child move with the highest visit count, ties broken
// by first-encountered. ok is false if Result has no children (e.g. the
// root position had no legal moves, or iterations was <= 0).
func BestMove(res Result) (board.Move, bool) {
	if len(res.Children) == 0 {
		return board.Move{}, false
	}
	best := res.Children[0]
	for _, c := range res.Children[1:] {
		if c.Visits > best.Visits {
			best = c
		}
	}
	return best.Move, true
}

func buildResult(root *node) Result {
	children := make([]ChildVisit, len(root.children))
	for i, c := range root.children {
		children[i] = ChildVisit{Move: c.move, Visits: c.n}
	}
	return Result{Children: children, RootValue: root.value(), RootVisits: root.n}
}

// terminalValue is the value of a position with no legal moves, from the
// perspective of its own side to move: a side only ever runs out of legal
// moves when stalemated (0) or checkmated (-1) -- it can never be the side
// that just delivered mate.
func terminalValue(pos *board.Position) float64 {
	if pos.GameResult() == board.Draw {
		return 0
	}
	return -1
}

// playoutValue runs a uniform random playout from a clone of pos and
// converts the terminal result into a value from pos's own side-to-move
// perspective.
func playoutValue(pos *board.Position, rng *rand.Rand) float64 {
	us := pos.SideToMove()
	clone := pos.Clone()
	result := board.RandomPlayout(clone, rng)
	switch result {
	case board.Draw:
		return 0
	case board.WhiteWins:
		if us == board.White {
			return 1
		}
		return -1
	default: // board.BlackWins
		if us == board.Black {
			return 1
		}
		return -1
	}
}
