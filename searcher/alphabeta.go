package searcher

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"math"
)

// window holds the running bounds of a node: alpha is the best value the
// maximizer has secured so far, beta the best the minimizer has secured.
type window struct {
	alpha float64
	beta  float64
}

func fullWindow() window {
	return window{alpha: math.Inf(-1), beta: math.Inf(1)}
}

// tighten folds a child value into the bound owned by player.
func (w window) tighten(player int, value float64) window {
	if player == game.Player1 {
		w.alpha = math.Max(w.alpha, value)
	} else {
		w.beta = math.Min(w.beta, value)
	}
	return w
}

// bound is the value player has secured.
func (w window) bound(player int) float64 {
	if player == game.Player1 {
		return w.alpha
	}
	return w.beta
}

type alphaBeta struct {
	metrics metrics.Collector
}

// NewAlphaBeta returns a searcher that computes exact minimax values while
// skipping subtrees that cannot change the result. Children are always
// explored in the order Successors returns them, so the set of pruned states
// is reproducible.
func NewAlphaBeta(options ...Option) *Searcher {
	c := newConfig(options)
	return &Searcher{
		strategy: &alphaBeta{metrics: c.metrics},
		name:     KindAlphaBeta.String(),
		metrics:  c.metrics,
	}
}

// Value starts from the widest window, so no cutoff can discard a child of
// state itself and the result is exact.
func (a *alphaBeta) Value(state game.State) float64 {
	return a.search(state, fullWindow())
}

// search explores state's children left to right, each under the bounds this
// node has accumulated from the siblings before it. It stops as soon as its
// own bound falls outside the parent's window: the parent would never choose
// this node, so the returned bound is enough.
func (a *alphaBeta) search(state game.State, parent window) float64 {
	a.metrics.AddNode()
	successors := state.Successors()
	if len(successors) == 0 {
		a.metrics.AddTerminal()
		return state.Utility()
	}

	player := state.NextPlayer()
	local := fullWindow()
	for _, successor := range successors {
		local = local.tighten(player, a.search(successor.State, local))

		if player == game.Player1 && local.alpha >= parent.beta {
			a.metrics.AddCutoff()
			return local.alpha
		}
		if player != game.Player1 && local.beta <= parent.alpha {
			a.metrics.AddCutoff()
			return local.beta
		}
	}
	return local.bound(player)
}
