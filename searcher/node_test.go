package searcher

import "connect383/game"

// mockState is a hand-built game tree. Leaves are terminal; eval is what the
// static evaluator sees.
type mockState struct {
	player   int
	utility  float64
	eval     float64
	children []*mockState
	expanded *int // shared count of Successors calls
}

func (m *mockState) Successors() []game.Successor {
	if m.expanded != nil {
		*m.expanded++
	}
	successors := make([]game.Successor, len(m.children))
	for i, child := range m.children {
		successors[i] = game.Successor{Move: game.Move(i), State: child}
	}
	return successors
}

func (m *mockState) NextPlayer() int {
	return m.player
}

func (m *mockState) Utility() float64 {
	if len(m.children) > 0 {
		panic("utility requested on a non-terminal state")
	}
	return m.utility
}

func (m *mockState) Rows() [][]int  { return nil }
func (m *mockState) Cols() [][]int  { return nil }
func (m *mockState) Diags() [][]int { return nil }

func leaf(utility float64) *mockState {
	return &mockState{player: game.Player1, utility: utility}
}

func node(player int, children ...*mockState) *mockState {
	return &mockState{player: player, children: children}
}

// withCounter shares one expansion counter across the whole tree.
func withCounter(root *mockState) (*mockState, *int) {
	count := 0
	var walk func(m *mockState)
	walk = func(m *mockState) {
		m.expanded = &count
		for _, child := range m.children {
			walk(child)
		}
	}
	walk(root)
	return root, &count
}

func mockEval(s game.State) float64 {
	return s.(*mockState).eval
}

// textbookTree is the classic three-by-three alpha-beta example: the root
// maximizes over three minimizing children.
func textbookTree() *mockState {
	return node(game.Player1,
		node(game.Player2, leaf(3), leaf(12), leaf(8)),
		node(game.Player2, leaf(2), leaf(4), leaf(6)),
		node(game.Player2, leaf(14), leaf(5), leaf(2)),
	)
}
