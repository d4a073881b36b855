package searcher

import (
	"connect383/experiments/metrics"
	"connect383/game"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

// Unbounded disables the depth limit of a heuristic search.
const Unbounded = math.MaxInt

var (
	ErrNoMoves      = errors.New("no legal moves from a terminal state")
	ErrInvalidDepth = errors.New("depth limit must be non-negative")
	ErrUnknownKind  = errors.New("unknown searcher kind")
)

// Strategy computes the minimax value of a state. Implementations differ in
// how much of the tree they explore.
type Strategy interface {
	Value(state game.State) float64
}

// Searcher picks the move whose resulting state has the best strategy value
// for the player to move.
type Searcher struct {
	strategy Strategy
	name     string
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

// GetMove returns the best move from state and the state it leads to. Ties go
// to the move generated first.
func (s *Searcher) GetMove(state game.State) (game.Move, game.State, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return 0, nil, ErrNoMoves
	}

	s.metrics.Start()
	player := state.NextPlayer()
	best := successors[0]
	bestValue := math.Inf(-1)
	if player != game.Player1 {
		bestValue = math.Inf(1)
	}
	for i, successor := range successors {
		value := s.strategy.Value(successor.State)
		if i == 0 || (player == game.Player1 && value > bestValue) || (player != game.Player1 && value < bestValue) {
			best, bestValue = successor, value
		}
	}
	s.last = s.metrics.Complete()

	log.Debug().Msgf("%s chose move %d with value %.1f after %d nodes", s.name, best.Move, bestValue, s.last.Nodes)
	return best.Move, best.State, nil
}

// Value returns the strategy's value of state.
func (s *Searcher) Value(state game.State) float64 {
	return s.strategy.Value(state)
}

// Metrics reports on the most recent GetMove call. It is empty unless the
// searcher was built WithMetrics.
func (s *Searcher) Metrics() metrics.SearchMetric {
	return s.last
}

func (s *Searcher) String() string {
	return s.name
}

// Kind selects a strategy at construction time.
type Kind int

const (
	KindMinimax Kind = iota
	KindHeuristic
	KindAlphaBeta
)

func (k Kind) String() string {
	switch k {
	case KindMinimax:
		return "minimax"
	case KindHeuristic:
		return "heuristic"
	case KindAlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return KindMinimax, nil
	case "heuristic":
		return KindHeuristic, nil
	case "alphabeta", "prune":
		return KindAlphaBeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// New builds a searcher of the given kind. depthLimit only applies to
// KindHeuristic.
func New(kind Kind, depthLimit int, options ...Option) (*Searcher, error) {
	switch kind {
	case KindMinimax:
		return NewMinimax(options...), nil
	case KindHeuristic:
		return NewHeuristic(depthLimit, options...)
	case KindAlphaBeta:
		return NewAlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// best folds a child value into the running best for the given mover.
func best(player int, current, value float64) float64 {
	if player == game.Player1 {
		return math.Max(current, value)
	}
	return math.Min(current, value)
}

// worst is the identity of best for the given mover.
func worst(player int) float64 {
	if player == game.Player1 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
