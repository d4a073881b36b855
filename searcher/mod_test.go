package searcher

import (
	"connect383/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func allSearchers(t *testing.T) []*Searcher {
	heuristic, err := NewHeuristic(Unbounded)
	require.NoError(t, err)
	return []*Searcher{NewMinimax(), heuristic, NewAlphaBeta()}
}

func TestGetMove(t *testing.T) {
	t.Run("maximizer picks the highest value", func(t *testing.T) {
		root := node(game.Player1, leaf(1), leaf(7), leaf(-3))
		for _, s := range allSearchers(t) {
			move, state, err := s.GetMove(root)

			require.NoError(t, err)
			require.Equal(t, game.Move(1), move, s.String())
			require.Same(t, root.children[1], state, s.String())
		}
	})

	t.Run("minimizer picks the lowest value", func(t *testing.T) {
		root := node(game.Player2, leaf(1), leaf(7), leaf(-3))
		for _, s := range allSearchers(t) {
			move, _, err := s.GetMove(root)

			require.NoError(t, err)
			require.Equal(t, game.Move(2), move, s.String())
		}
	})

	t.Run("ties go to the first generated move", func(t *testing.T) {
		maxRoot := node(game.Player1, leaf(3), leaf(5), leaf(5))
		minRoot := node(game.Player2, leaf(2), leaf(-1), leaf(-1))
		for _, s := range allSearchers(t) {
			move, _, err := s.GetMove(maxRoot)
			require.NoError(t, err)
			require.Equal(t, game.Move(1), move, s.String())

			move, _, err = s.GetMove(minRoot)
			require.NoError(t, err)
			require.Equal(t, game.Move(1), move, s.String())
		}
	})

	t.Run("all moves equal picks the first", func(t *testing.T) {
		root := node(game.Player2, leaf(0), leaf(0))
		for _, s := range allSearchers(t) {
			move, _, err := s.GetMove(root)
			require.NoError(t, err)
			require.Equal(t, game.Move(0), move, s.String())
		}
	})

	t.Run("terminal state has no move", func(t *testing.T) {
		for _, s := range allSearchers(t) {
			_, state, err := s.GetMove(leaf(4))

			require.ErrorIs(t, err, ErrNoMoves)
			require.Nil(t, state)
		}
	})

	t.Run("looks past the immediate reply", func(t *testing.T) {
		// Move 0 looks good at first but the minimizer answers with -10.
		root := node(game.Player1,
			node(game.Player2, leaf(9), leaf(-10)),
			node(game.Player2, leaf(2), leaf(4)),
		)
		for _, s := range allSearchers(t) {
			move, _, err := s.GetMove(root)
			require.NoError(t, err)
			require.Equal(t, game.Move(1), move, s.String())
		}
	})
}

func TestMetrics(t *testing.T) {
	t.Run("empty without WithMetrics", func(t *testing.T) {
		s := NewMinimax()
		_, _, err := s.GetMove(textbookTree())
		require.NoError(t, err)

		require.Zero(t, s.Metrics().Nodes)
	})

	t.Run("counts nodes below the root", func(t *testing.T) {
		s := NewMinimax(WithMetrics())
		_, _, err := s.GetMove(textbookTree())
		require.NoError(t, err)

		got := s.Metrics()
		require.Equal(t, int64(12), got.Nodes, "3 children and 9 leaves")
		require.Equal(t, int64(9), got.Terminals)
		require.Zero(t, got.Cutoffs)
	})

	t.Run("reset between searches", func(t *testing.T) {
		s := NewMinimax(WithMetrics())
		_, _, err := s.GetMove(textbookTree())
		require.NoError(t, err)
		_, _, err = s.GetMove(node(game.Player1, leaf(1), leaf(2)))
		require.NoError(t, err)

		require.Equal(t, int64(2), s.Metrics().Nodes)
	})
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"minimax":    KindMinimax,
		"heuristic":  KindHeuristic,
		"alphabeta":  KindAlphaBeta,
		" AlphaBeta": KindAlphaBeta,
		"prune":      KindAlphaBeta,
	}
	for name, want := range cases {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseKind("mcts")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew(t *testing.T) {
	t.Run("builds each kind", func(t *testing.T) {
		for _, kind := range []Kind{KindMinimax, KindHeuristic, KindAlphaBeta} {
			s, err := New(kind, 2)
			require.NoError(t, err)
			require.Contains(t, s.String(), kind.String())
		}
	})

	t.Run("propagates depth errors", func(t *testing.T) {
		_, err := New(KindHeuristic, -1)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := New(Kind(42), 0)
		require.ErrorIs(t, err, ErrUnknownKind)
	})
}
