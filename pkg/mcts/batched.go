package mcts

import (
	"math/rand"

	"github.com/K16858/mctschess/pkg/board"
)

type workerState int

const (
	running workerState = iota
	needsEvaluation
)

// worker is one lane of the batched loop: its own working position and a
// pointer into the shared tree. Multiple workers share one tree; virtual
// loss is what keeps them from all walking into the same child.
type worker struct {
	pos   *board.Position
	node  *node
	state workerState
}

// budget caps the total number of backpropagations across the whole batched
// run at exactly iterations, so root.N lands on iterations precisely even
// though a single coalesced batch can complete several workers at once.
type budget struct {
	completed  int
	iterations int
}

func (b *budget) exhausted() bool {
	return b.completed >= b.iterations
}

// spend performs one backpropagation of a batch-evaluator value if the
// budget allows it, returning whether it did. n must be a node a move was
// actually played into: the bare root, before any move, never holds a
// meaningful evaluator value of its own. Terminal positions, which carry an
// exact value regardless of whether a move preceded them, go through
// spendTerminal instead.
func (b *budget) spend(n *node, value float64) bool {
	if b.exhausted() {
		return false
	}
	if !n.hasMove {
		panic("mcts: spend called on a node with no move played into it")
	}
	backpropagate(n, value)
	b.completed++
	return true
}

// spendTerminal backpropagates an exact terminal value if the budget
// allows it. Unlike spend, it accepts the bare root: a search started from
// an already-finished position is terminal before any move is ever played.
func (b *budget) spendTerminal(n *node, value float64) bool {
	if b.exhausted() {
		return false
	}
	backpropagate(n, value)
	b.completed++
	return true
}

// runBatched implements the batched MCTS loop: a pool of workers stepped
// round-robin, leaves coalesced by FEN and evaluated together via
// BatchPriorFn/BatchValueFn.
func runBatched(pos *board.Position, iterations int, rng *rand.Rand, opt resolved) Result {
	root := newNode(nil, board.Move{}, false, 0)

	workers := make([]*worker, opt.batchSize)
	for i := range workers {
		workers[i] = &worker{pos: pos.Clone(), node: root, state: needsEvaluation}
	}

	b := &budget{iterations: iterations}
	for !b.exhausted() {
		var pending []*worker
		for _, w := range workers {
			if w.state == needsEvaluation {
				pending = append(pending, w)
			}
		}
		if len(pending) > 0 {
			evaluateBatch(pending, root, pos, rng, opt, b)
		}

		for _, w := range workers {
			if b.exhausted() {
				break
			}
			if w.state == running {
				advanceOnePly(w, root, pos, opt, b)
			}
		}
	}

	return buildResult(root)
}

// evaluateBatch groups pending workers by the FEN of their (shared) leaf
// position, calls BatchPriorFn/BatchValueFn once each with the list of
// unique FENs, expands
// every grouped leaf node (once, even if several workers share it), and then
// advances each worker one more ply onto a PUCT-selected child — mirroring
// runSequential's expand-then-select-then-backpropagate step. The batch's
// evaluated value describes the leaf position itself, not any one child of
// it, so it is only ever attributed (and only ever consumes the iteration
// budget) once a worker has actually played a move into that child; the
// freshly expanded leaf never receives a backpropagation directly. A leaf
// with no legal moves is terminal and is handled before any of that: its
// exact terminal value is backpropagated at the leaf itself, since no move
// exists to advance into.
func evaluateBatch(pending []*worker, root *node, rootPos *board.Position, rng *rand.Rand, opt resolved, b *budget) {
	var fens []string
	groups := map[string][]*worker{}
	movesByFEN := map[string][]board.Move{}

	for _, w := range pending {
		f := w.pos.FEN()
		if _, ok := groups[f]; !ok {
			fens = append(fens, f)
			movesByFEN[f] = w.pos.LegalMoves()
		}
		groups[f] = append(groups[f], w)
	}

	ucis := make([][]string, len(fens))
	for i, f := range fens {
		moves := movesByFEN[f]
		u := make([]string, len(moves))
		for j, m := range moves {
			u[j] = m.UCI()
		}
		ucis[i] = u
	}

	priorsOut := opt.batchPriorFn(fens, ucis)
	valuesOut := opt.batchValueFn(fens)

	for i, f := range fens {
		moves := movesByFEN[f]

		var rawValue float64
		if i < len(valuesOut) {
			rawValue = valuesOut[i]
		}
		value := sanitizeValue(rawValue)

		if len(moves) == 0 {
			for _, w := range groups[f] {
				if b.exhausted() {
					return
				}
				if b.spendTerminal(w.node, terminalValue(w.pos)) {
					resetWorker(w, root, rootPos)
				}
			}
			continue
		}

		var raw []float64
		if i < len(priorsOut) {
			raw = priorsOut[i]
		}
		priors := normalizePriors(raw, len(moves))

		for _, w := range groups[f] {
			if b.exhausted() {
				return
			}
			if !w.node.isExpanded() {
				p := priors
				if w.node == root && opt.dirichletOn {
					p = mixDirichlet(priors, rng, opt.dirichletAlpha, opt.dirichletEpsilon)
				}
				w.node.expand(moves, p)
			}
			advanceAfterExpansion(w, root, rootPos, opt, b, value)
		}
	}
}

// stepChild selects w.node's PUCT-maximising child under virtual loss,
// applies virtual loss, and advances w onto it.
func stepChild(w *worker, opt resolved) *node {
	child := selectChild(w.node, opt.cpuct)
	child.nv++
	w.pos.Make(child.move)
	w.node = child
	return child
}

// advanceOnePly steps a running worker one ply deeper into an
// already-expanded subtree, spending no new evaluation: the move played is
// not itself a fresh leaf the batch evaluator has seen. A worker whose new
// position has no legal moves backpropagates the terminal value immediately
// (budget permitting) and resets to the root.
func advanceOnePly(w *worker, root *node, rootPos *board.Position, opt resolved, b *budget) {
	child := stepChild(w, opt)

	if len(w.pos.LegalMoves()) == 0 {
		if b.spendTerminal(child, terminalValue(w.pos)) {
			resetWorker(w, root, rootPos)
		}
		return
	}

	if child.isExpanded() {
		w.state = running
	} else {
		w.state = needsEvaluation
	}
}

// advanceAfterExpansion is the batched counterpart of runSequential's
// expand-then-select-then-backpropagate step: w.node has just been expanded
// from a coalesced batch evaluation, so this plays one more ply to reach the
// genuine post-move leaf the evaluated value actually describes, and spends
// it there. A worker whose new position has no legal moves backpropagates
// the exact terminal value instead and resets to the root.
func advanceAfterExpansion(w *worker, root *node, rootPos *board.Position, opt resolved, b *budget, value float64) {
	child := stepChild(w, opt)

	if len(w.pos.LegalMoves()) == 0 {
		if b.spendTerminal(child, terminalValue(w.pos)) {
			resetWorker(w, root, rootPos)
		}
		return
	}

	if !b.spend(child, value) {
		return
	}

	if child.isExpanded() {
		w.state = running
	} else {
		w.state = needsEvaluation
	}
}

func resetWorker(w *worker, root *node, rootPos *board.Position) {
	w.pos = rootPos.Clone()
	w.node = root
	if root.isExpanded() {
		w.state = running
	} else {
		w.state = needsEvaluation
	}
}
