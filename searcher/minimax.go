package searcher

import (
	"connect383/experiments/metrics"
	"connect383/game"
)

type minimax struct {
	metrics metrics.Collector
}

// NewMinimax returns a searcher that traverses the full game tree. Its cost
// grows exponentially with the number of plies left, so it is only practical
// on small or nearly full boards.
func NewMinimax(options ...Option) *Searcher {
	c := newConfig(options)
	return &Searcher{
		strategy: &minimax{metrics: c.metrics},
		name:     KindMinimax.String(),
		metrics:  c.metrics,
	}
}

// Value is the exact minimax value of state.
func (m *minimax) Value(state game.State) float64 {
	m.metrics.AddNode()
	successors := state.Successors()
	if len(successors) == 0 {
		m.metrics.AddTerminal()
		return state.Utility()
	}

	player := state.NextPlayer()
	value := worst(player)
	for _, successor := range successors {
		value = best(player, value, m.Value(successor.State))
	}
	return value
}
