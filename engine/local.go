package engine

import (
	"connect383/agent"
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/utils"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State   game.State
	Agents  []agent.Agent // index 0 plays Player1
	counter *game.StateCounter
}

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

// WithStateCounter reports the boards constructed during the game in the
// game metric. The counter must be the one the starting state was built with.
// Boards implementing game.Terminal are never expanded by the engine itself,
// so the count covers the agents' work.
func WithStateCounter(counter *game.StateCounter) Option {
	return func(e *Engine) {
		e.counter = counter
	}
}

func LocalEngine(agents []agent.Agent, state game.State, options ...Option) (*Engine, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAgentCount, len(agents))
	}
	e := &Engine{
		State:  state,
		Agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop until no moves remain.
func (e *Engine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}
	if e.counter != nil {
		e.counter.Reset()
	}

	log.Debug().Msgf("player %d is starting", e.State.NextPlayer())

	step := 1
	for !isTerminal(e.State) {
		if step > MaxMoves {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("%w of %d", ErrMoveLimit, MaxMoves)
		}
		player := e.State.NextPlayer()
		current := e.Agents[agentIndex(player)]

		move, next, searchMetric, err := current.FindMove(e.State)
		if err != nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("player %d at step %d: %w", player, step, err)
		}
		if next == nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("player %d at step %d: %w", player, step, ErrIllegalState)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %d played %d after %d nodes", step, player, move, searchMetric.Nodes)

		e.State = next
		step++
	}

	utility := e.State.Utility()
	result := Result{
		State:   e.State,
		Utility: utility,
		Winner:  utils.Sign(utility),
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Utility = utility
	gameMetric.Winner = result.Winner
	if e.counter != nil {
		gameMetric.States = e.counter.Count()
	}

	log.Debug().Msgf("game over after %d moves with utility %.0f", gameMetric.TotalMoves, utility)
	return result, gameMetric, moveMetrics, nil
}

// isTerminal avoids expanding the state when it can answer directly, so the
// state counter only sees boards built by the agents.
func isTerminal(state game.State) bool {
	if t, ok := state.(game.Terminal); ok {
		return t.Terminal()
	}
	return len(state.Successors()) == 0
}

func agentIndex(player int) int {
	if player == game.Player1 {
		return 0
	}
	return 1
}
