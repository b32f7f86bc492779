package mcts

import (
	"math/rand"

	"github.com/K16858/mctschess/pkg/board"
)

// runSequential implements the sequential MCTS loop: one root-to-leaf walk,
// one expansion, one leaf evaluation, one backpropagation per iteration.
func runSequential(pos *board.Position, iterations int, rng *rand.Rand, opt resolved) Result {
	root := newNode(nil, board.Move{}, false, 0)

	for i := 0; i < iterations; i++ {
		working := pos.Clone()
		n := root
		for n.isExpanded() {
			n = selectChild(n, opt.cpuct)
			working.Make(n.move)
		}

		moves := working.LegalMoves()
		if len(moves) == 0 {
			backpropagate(n, terminalValue(working))
			continue
		}

		priors := normalizePriors(callPriorFn(opt.priorFn, working, moves), len(moves))
		if n == root && opt.dirichletOn {
			priors = mixDirichlet(priors, rng, opt.dirichletAlpha, opt.dirichletEpsilon)
		}
		n.expand(moves, priors)

		child := selectChild(n, opt.cpuct)
		working.Make(child.move)
		backpropagate(child, leafValue(opt.valueFn, working, rng))
	}

	return buildResult(root)
}

func callPriorFn(fn PriorFn, pos *board.Position, moves []board.Move) []float64 {
	if fn == nil {
		return nil
	}
	return fn(pos, moves)
}

func leafValue(fn ValueFn, pos *board.Position, rng *rand.Rand) float64 {
	if fn != nil {
		return sanitizeValue(fn(pos))
	}
	return playoutValue(pos, rng)
}
