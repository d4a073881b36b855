package agent

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/searcher"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng  *rand.Rand
	seed uint64
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
// Two agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, game.State, metrics.SearchMetric, error) {
	start := time.Now()
	successors := state.Successors()
	if len(successors) == 0 {
		return 0, nil, metrics.SearchMetric{}, searcher.ErrNoMoves
	}
	chosen := successors[a.rng.Intn(len(successors))]
	return chosen.Move, chosen.State, metrics.SearchMetric{Duration: time.Since(start)}, nil
}

func (a *randomAgent) String() string {
	return fmt.Sprintf("random:%d", a.seed)
}
