package searcher

import (
	"connect383/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimaxValue(t *testing.T) {
	t.Run("terminal state returns its utility without recursion", func(t *testing.T) {
		root, expanded := withCounter(leaf(-6))

		got := NewMinimax().Value(root)

		require.Equal(t, -6.0, got)
		require.Equal(t, 1, *expanded, "Only the terminal check should list successors")
	})

	t.Run("textbook tree", func(t *testing.T) {
		root, expanded := withCounter(textbookTree())

		got := NewMinimax().Value(root)

		require.Equal(t, 3.0, got)
		require.Equal(t, 13, *expanded, "Every node is expanded")
	})

	t.Run("players need not alternate", func(t *testing.T) {
		root := node(game.Player1,
			node(game.Player1, leaf(1), leaf(4)),
			node(game.Player2, leaf(5), leaf(0)),
		)

		require.Equal(t, 4.0, NewMinimax().Value(root))
	})

	t.Run("deeper tree", func(t *testing.T) {
		root := node(game.Player2,
			node(game.Player1,
				node(game.Player2, leaf(4), leaf(6)),
				node(game.Player2, leaf(7), leaf(9)),
			),
			node(game.Player1,
				node(game.Player2, leaf(1), leaf(2)),
				node(game.Player2, leaf(0), leaf(-1)),
			),
		)

		// min(max(4, 7), max(1, -1)) = min(7, 1)
		require.Equal(t, 1.0, NewMinimax().Value(root))
	})
}

func TestMinimaxOnBoard(t *testing.T) {
	t.Run("full board returns its score", func(t *testing.T) {
		b, err := game.NewBoardFromCells([][]int{
			{1, 1, 1},
			{-1, -1, 1},
		}, game.Player2)
		require.NoError(t, err)

		require.Equal(t, 9.0, NewMinimax().Value(b))
	})

	t.Run("takes the completing move", func(t *testing.T) {
		// Column 2 completes a row of three and leaves two threats on the
		// top row, only one of which player 2 can block.
		b, err := game.NewBoardFromCells([][]int{
			{0, 0, 0},
			{1, 1, 0},
			{-1, -1, 1},
		}, game.Player1)
		require.NoError(t, err)

		move, child, err := NewMinimax().GetMove(b)

		require.NoError(t, err)
		require.Equal(t, game.Move(2), move)
		require.Equal(t, game.Player1, child.(*game.Board).Cell(1, 2))
	})
}
