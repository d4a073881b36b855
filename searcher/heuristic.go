package searcher

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"fmt"
)

type heuristic struct {
	depthLimit int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

// NewHeuristic returns a searcher that explores depthLimit plies and estimates
// the states at the limit with the static evaluator. A limit of 0 evaluates
// the root directly, Unbounded behaves like NewMinimax.
func NewHeuristic(depthLimit int, options ...Option) (*Searcher, error) {
	if depthLimit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depthLimit)
	}

	c := newConfig(options)
	name := fmt.Sprintf("%s:%d", KindHeuristic, depthLimit)
	if depthLimit == Unbounded {
		name = fmt.Sprintf("%s:unbounded", KindHeuristic)
	}
	return &Searcher{
		strategy: &heuristic{depthLimit: depthLimit, evaluate: c.evaluate, metrics: c.metrics},
		name:     name,
		metrics:  c.metrics,
	}, nil
}

func (h *heuristic) Value(state game.State) float64 {
	return h.bounded(state, 0)
}

// bounded checks the depth limit before terminality, so reaching the limit
// never costs a successor expansion.
func (h *heuristic) bounded(state game.State, depth int) float64 {
	h.metrics.AddNode()
	if depth == h.depthLimit {
		h.metrics.AddEvaluation()
		return h.evaluate(state)
	}

	successors := state.Successors()
	if len(successors) == 0 {
		h.metrics.AddTerminal()
		return state.Utility()
	}

	player := state.NextPlayer()
	value := worst(player)
	for _, successor := range successors {
		value = best(player, value, h.bounded(successor.State, depth+1))
	}
	return value
}
