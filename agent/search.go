package agent

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) FindMove(state game.State) (game.Move, game.State, metrics.SearchMetric, error) {
	move, next, err := a.searcher.GetMove(state)
	if err != nil {
		return 0, nil, metrics.SearchMetric{}, err
	}
	return move, next, a.searcher.Metrics(), nil
}

func (a *searchAgent) String() string {
	return a.searcher.String()
}
