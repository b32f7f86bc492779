// Package mcts implements a PUCT Monte-Carlo Tree Search over pkg/board
// positions, with pluggable priors and value estimators, a batched
// worker-coalescing evaluation mode, virtual loss and Dirichlet root noise.
package mcts

import (
	"fmt"

	"github.com/K16858/mctschess/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PriorFn returns a nonnegative prior per move in moves, given the position
// they were generated from. A wrong-length or all-zero/negative result falls
// back to uniform priors; callers don't need to renormalise themselves.
type PriorFn func(pos *board.Position, moves []board.Move) []float64

// ValueFn returns a value in [-1, 1] for pos, from the perspective of the
// side to move in pos. NaN or infinite results are replaced with 0.
type ValueFn func(pos *board.Position) float64

// BatchPriorFn is the batched-mode counterpart of PriorFn: fens and ucis are
// parallel slices (ucis[i] lists the legal moves of fens[i] in UCI form),
// and the result holds one prior slice per FEN, aligned to ucis[i].
type BatchPriorFn func(fens []string, ucis [][]string) [][]float64

// BatchValueFn is the batched-mode counterpart of ValueFn: one value per FEN.
type BatchValueFn func(fens []string) []float64

// Options configures a Run. The zero value is valid: it runs uniform-prior,
// random-playout MCTS with the default exploration constant.
type Options struct {
	// CPuct is the PUCT exploration constant. Defaults to DefaultCPuct if unset.
	CPuct lang.Optional[float64]

	// PriorFn and ValueFn drive sequential-mode expansion and leaf evaluation.
	// Both optional: nil PriorFn means uniform priors, nil ValueFn means leaf
	// values come from a uniform random playout.
	PriorFn PriorFn
	ValueFn ValueFn

	// BatchPriorFn and BatchValueFn, if both set, switch Run into batched
	// mode: BatchSize workers are stepped round-robin, leaves are coalesced
	// by FEN and evaluated together.
	BatchPriorFn BatchPriorFn
	BatchValueFn BatchValueFn
	// BatchSize is the worker pool size in batched mode, 1..1024. Defaults
	// to 1 if unset or out of range.
	BatchSize int

	// DirichletAlpha, if set (> 0), enables Dirichlet noise mixed into the
	// root's priors as (1-epsilon)*P + epsilon*Dir(alpha). DirichletEpsilon
	// defaults to 0.25 if noise is enabled but epsilon is zero.
	DirichletAlpha   lang.Optional[float64]
	DirichletEpsilon float64
}

func (o Options) String() string {
	cpuct, _ := o.CPuct.V()
	return fmt.Sprintf("{cpuct=%v, batched=%v, batchSize=%v, dirichlet=%v}",
		cpuct, o.BatchPriorFn != nil && o.BatchValueFn != nil, o.BatchSize, o.DirichletAlpha)
}

// resolved is Options with every default applied, computed once per Run.
type resolved struct {
	cpuct            float64
	priorFn          PriorFn
	valueFn          ValueFn
	batchPriorFn     BatchPriorFn
	batchValueFn     BatchValueFn
	batchSize        int
	dirichletAlpha   float64
	dirichletOn      bool
	dirichletEpsilon float64
}

func resolveOptions(o Options) resolved {
	cpuct, ok := o.CPuct.V()
	if !ok || cpuct <= 0 {
		cpuct = DefaultCPuct
	}

	batchSize := o.BatchSize
	if batchSize <= 0 || batchSize > 1024 {
		batchSize = 1
	}

	alpha, dirichletOn := o.DirichletAlpha.V()
	dirichletOn = dirichletOn && alpha > 0
	epsilon := o.DirichletEpsilon
	if dirichletOn && epsilon <= 0 {
		epsilon = 0.25
	}

	return resolved{
		cpuct:            cpuct,
		priorFn:          o.PriorFn,
		valueFn:          o.ValueFn,
		batchPriorFn:     o.BatchPriorFn,
		batchValueFn:     o.BatchValueFn,
		batchSize:        batchSize,
		dirichletAlpha:   alpha,
		dirichletOn:      dirichletOn,
		dirichletEpsilon: epsilon,
	}
}

func (r resolved) isBatched() bool {
	return r.batchPriorFn != nil && r.batchValueFn != nil
}
