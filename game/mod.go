package game

// Move identifies a legal action from a state. For Connect 383 it is the
// column a piece is dropped into.
type Move int

// Cell values stored on the board and exposed through lines.
const (
	Empty   = 0
	Player1 = 1
	Player2 = -1
	Blocked = 2
)

// Successor pairs a move with the state it leads to.
type Successor struct {
	Move  Move
	State State
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Successors lists every (move, child) pair in a canonical order. It is
	// empty iff the state is terminal.
	Successors() []Successor
	// NextPlayer is Player1 (maximizer) or Player2 (minimizer).
	NextPlayer() int
	// Utility is the final value of a terminal state, larger favors Player1.
	Utility() float64
	Rows() [][]int
	Cols() [][]int
	Diags() [][]int
}

// Terminal is implemented by states that can tell the game is over without
// generating successors.
type Terminal interface {
	Terminal() bool
}

// Evaluates a non-terminal state to a heuristic estimate of its utility,
// positive values favoring Player1.
type Evaluate func(State) float64

// Opponent returns the other player.
func Opponent(player int) int {
	return -player
}
