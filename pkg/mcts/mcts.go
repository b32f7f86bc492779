package mcts

import (
	"math/rand"

	"github.com/K16858/mctschess/pkg/board"
)

// Run searches from pos for the given number of iterations and returns the
// root's children with their visit counts. iterations <= 0 returns an empty,
// zero-visit Result immediately rather than erroring.
//
// Run dispatches to the batched loop when both Options.BatchPriorFn and
// Options.BatchValueFn are set, and to the sequential loop otherwise. It
// never mutates pos.
func Run(pos *board.Position, iterations int, seed int64, opt Options) Result {
	if iterations <= 0 {
		return Result{}
	}

	rng := rand.New(rand.NewSource(seed))
	resolvedOpt := resolveOptions(opt)

	if resolvedOpt.isBatched() {
		return runBatched(pos, iterations, rng, resolvedOpt)
	}
	return runSequential(pos, iterations, rng, resolvedOpt)
}
