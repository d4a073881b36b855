package agent

import (
	"connect383/experiments/metrics"
	"connect383/game"
)

type Agent interface {
	// FindMove returns the chosen move, the state it leads to and performance
	// metrics (if collected) from the decision process
	FindMove(state game.State) (game.Move, game.State, metrics.SearchMetric, error)
}
