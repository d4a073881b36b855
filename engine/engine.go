package engine

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"errors"
)

// MaxMoves guards against State implementations that never terminate.
const MaxMoves = 10000

var (
	ErrAgentCount   = errors.New("a game needs exactly two agents")
	ErrMoveLimit    = errors.New("game exceeded the move limit")
	ErrIllegalState = errors.New("agent returned no state")
)

type Runner interface {
	// Run plays the game until the state is terminal
	Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error)
}

// Result is the outcome of a finished game.
type Result struct {
	State   game.State
	Utility float64
	Winner  int // +1, -1, or 0 for a draw
}
