package engine

import (
	"connect383/agent"
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/searcher"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays a fixed sequence of columns.
type scriptedAgent struct {
	moves []game.Move
	calls int
}

func (a *scriptedAgent) FindMove(state game.State) (game.Move, game.State, metrics.SearchMetric, error) {
	move := a.moves[a.calls]
	a.calls++
	for _, successor := range state.Successors() {
		if successor.Move == move {
			return move, successor.State, metrics.SearchMetric{Nodes: 1}, nil
		}
	}
	return 0, nil, metrics.SearchMetric{}, errors.New("scripted move is illegal")
}

func TestLocalEngine(t *testing.T) {
	b, err := game.NewBoard(2, 3)
	require.NoError(t, err)

	t.Run("needs exactly two agents", func(t *testing.T) {
		_, err := LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}, b)
		require.ErrorIs(t, err, ErrAgentCount)
	})

	t.Run("alternates agents by the player to move", func(t *testing.T) {
		// X fills the bottom row, O the top.
		first := &scriptedAgent{moves: []game.Move{0, 1, 2}}
		second := &scriptedAgent{moves: []game.Move{0, 1, 2}}
		e, err := LocalEngine([]agent.Agent{first, second}, b)
		require.NoError(t, err)

		result, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 3, first.calls)
		require.Equal(t, 3, second.calls)
		require.Equal(t, "OOO\nXXX\n012\n", result.State.(*game.Board).String())
		require.Equal(t, 0.0, result.Utility)
		require.Equal(t, 0, result.Winner)

		require.Equal(t, 6, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 6)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			if i%2 == 0 {
				require.Equal(t, game.Player1, m.Player)
			} else {
				require.Equal(t, game.Player2, m.Player)
			}
			require.Equal(t, int64(1), m.Nodes)
		}
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("reports the winner", func(t *testing.T) {
		start, err := game.NewBoardFromCells([][]int{
			{0, 0, 0},
			{1, 1, 0},
		}, game.Player1)
		require.NoError(t, err)
		e, err := LocalEngine([]agent.Agent{
			&scriptedAgent{moves: []game.Move{2, 1}},
			&scriptedAgent{moves: []game.Move{0, 2}},
		}, start)
		require.NoError(t, err)

		result, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "OXO\nXXX\n012\n", result.State.(*game.Board).String())
		require.Equal(t, 9.0, result.Utility)
		require.Equal(t, game.Player1, result.Winner)
		require.Equal(t, game.Player1, gameMetric.Winner)
		require.Equal(t, 9.0, gameMetric.Utility)
		require.Equal(t, 4, gameMetric.TotalMoves)
	})

	t.Run("agent errors abort the game", func(t *testing.T) {
		e, err := LocalEngine([]agent.Agent{
			&scriptedAgent{moves: []game.Move{0}},
			&scriptedAgent{moves: []game.Move{7}},
		}, b)
		require.NoError(t, err)

		_, _, moveMetrics, err := e.Run()

		require.ErrorContains(t, err, "player -1 at step 2")
		require.Len(t, moveMetrics, 1)
	})

	t.Run("states counts only the agents' boards", func(t *testing.T) {
		counter := &game.StateCounter{}
		start, err := game.NewBoard(2, 3, game.WithStateCounter(counter))
		require.NoError(t, err)
		e, err := LocalEngine([]agent.Agent{
			&scriptedAgent{moves: []game.Move{0, 1, 2}},
			&scriptedAgent{moves: []game.Move{0, 1, 2}},
		}, start, WithStateCounter(counter))
		require.NoError(t, err)

		_, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		// One expansion per move over 3, 3, 2, 2, 1 and 1 open columns
		require.Equal(t, int64(12), gameMetric.States)
	})

	t.Run("search agents play to the end and count states", func(t *testing.T) {
		counter := &game.StateCounter{}
		start, err := game.NewBoard(3, 3, game.WithStateCounter(counter))
		require.NoError(t, err)
		e, err := LocalEngine([]agent.Agent{
			agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics())),
			agent.NewRandomAgent(5),
		}, start, WithStateCounter(counter))
		require.NoError(t, err)

		result, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Empty(t, result.State.Successors())
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Positive(t, gameMetric.States)
		require.Positive(t, moveMetrics[0].Nodes)
		require.Zero(t, moveMetrics[1].Nodes)
	})
}
