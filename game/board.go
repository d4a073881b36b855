package game

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidBlock      = errors.New("blocked cell outside the board")
	ErrColumnFull        = errors.New("column is full")
)

// Cell addresses a board square, row 0 being the top.
type Cell struct {
	Row int
	Col int
}

// StateCounter tallies how many boards have been constructed. Boards derived
// from one another share the counter they were created with.
type StateCounter struct {
	count atomic.Int64
}

func (c *StateCounter) Count() int64 {
	return c.count.Load()
}

func (c *StateCounter) Reset() {
	c.count.Store(0)
}

func (c *StateCounter) add() {
	if c != nil {
		c.count.Add(1)
	}
}

type BoardOption func(b *Board)

// WithBlocks marks cells as obstacles that neither player can occupy.
func WithBlocks(cells ...Cell) BoardOption {
	return func(b *Board) {
		b.blocks = append(b.blocks, cells...)
	}
}

func WithStateCounter(counter *StateCounter) BoardOption {
	return func(b *Board) {
		b.counter = counter
	}
}

// Board is a Connect 383 position. Pieces are dropped into columns and fall
// onto the first occupied cell below them.
type Board struct {
	rows    int
	cols    int
	cells   []int // row-major
	next    int
	blocks  []Cell
	counter *StateCounter
}

// NewBoard creates an empty board with Player1 to move.
func NewBoard(rows, cols int, options ...BoardOption) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
		next:  Player1,
	}
	for _, option := range options {
		option(b)
	}
	for _, cell := range b.blocks {
		if !b.inside(cell.Row, cell.Col) {
			return nil, fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrInvalidBlock, cell.Row, cell.Col, rows, cols)
		}
		b.cells[b.index(cell.Row, cell.Col)] = Blocked
	}
	b.counter.add()
	return b, nil
}

// NewBoardFromCells builds a position from an explicit grid. Every row must
// have the same length and hold Empty, Player1, Player2 or Blocked. Cells
// passed WithBlocks are blocked as well and must not hold a piece.
func NewBoardFromCells(grid [][]int, next int, options ...BoardOption) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	if next != Player1 && next != Player2 {
		return nil, fmt.Errorf("invalid player to move: %d", next)
	}
	b, err := NewBoard(len(grid), len(grid[0]), options...)
	if err != nil {
		return nil, err
	}
	for r, row := range grid {
		if len(row) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), b.cols)
		}
		for c, value := range row {
			if !isPlayer(value) && value != Empty && value != Blocked {
				return nil, fmt.Errorf("invalid cell value %d at (%d,%d)", value, r, c)
			}
			b.cells[b.index(r, c)] = value
		}
	}
	// Blocks given as options go on top of the grid.
	for _, cell := range b.blocks {
		i := b.index(cell.Row, cell.Col)
		if isPlayer(b.cells[i]) {
			return nil, fmt.Errorf("%w: (%d,%d) holds a piece", ErrInvalidBlock, cell.Row, cell.Col)
		}
		b.cells[i] = Blocked
	}
	b.next = next
	return b, nil
}

func (b *Board) Dims() (rows, cols int) {
	return b.rows, b.cols
}

func (b *Board) Cell(row, col int) int {
	return b.cells[b.index(row, col)]
}

func (b *Board) NextPlayer() int {
	return b.next
}

// LegalMoves returns the columns that still accept a piece, left to right.
func (b *Board) LegalMoves() []Move {
	moves := []Move{}
	for col := 0; col < b.cols; col++ {
		if b.cells[b.index(0, col)] == Empty {
			moves = append(moves, Move(col))
		}
	}
	return moves
}

// Play drops the mover's piece into the column and returns the resulting board.
func (b *Board) Play(move Move) (*Board, error) {
	col := int(move)
	if col < 0 || col >= b.cols {
		return nil, fmt.Errorf("column %d outside the board", col)
	}
	row := b.landingRow(col)
	if row < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumnFull, col)
	}

	child := b.copy()
	child.cells[child.index(row, col)] = b.next
	child.next = Opponent(b.next)
	return child, nil
}

// Terminal reports whether every column is full. No boards are constructed.
func (b *Board) Terminal() bool {
	for col := 0; col < b.cols; col++ {
		if b.cells[b.index(0, col)] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Successors() []Successor {
	moves := b.LegalMoves()
	successors := make([]Successor, 0, len(moves))
	for _, move := range moves {
		child, err := b.Play(move)
		if err != nil {
			panic(fmt.Sprintf("legal move %d rejected: %v", move, err))
		}
		successors = append(successors, Successor{Move: move, State: child})
	}
	return successors
}

// Utility is Player1's score minus Player2's score.
func (b *Board) Utility() float64 {
	p1, p2 := b.Scores()
	return float64(p1 - p2)
}

// Scores sums length^2 over each player's runs of three or more in every
// row, column and diagonal.
func (b *Board) Scores() (p1, p2 int) {
	return lineScores(b.Rows(), b.Cols(), b.Diags())
}

func (b *Board) Rows() [][]int {
	lines := make([][]int, 0, b.rows)
	for r := 0; r < b.rows; r++ {
		line := make([]int, b.cols)
		copy(line, b.cells[r*b.cols:(r+1)*b.cols])
		lines = append(lines, line)
	}
	return lines
}

func (b *Board) Cols() [][]int {
	lines := make([][]int, 0, b.cols)
	for c := 0; c < b.cols; c++ {
		line := make([]int, 0, b.rows)
		for r := 0; r < b.rows; r++ {
			line = append(line, b.cells[b.index(r, c)])
		}
		lines = append(lines, line)
	}
	return lines
}

// Diags returns the down-right diagonals followed by the down-left ones.
func (b *Board) Diags() [][]int {
	lines := [][]int{}
	// Down-right (\), starting on the top row then the left column
	for c := 0; c < b.cols; c++ {
		lines = append(lines, b.collectDiag(0, c, 1))
	}
	for r := 1; r < b.rows; r++ {
		lines = append(lines, b.collectDiag(r, 0, 1))
	}
	// Down-left (/), starting on the top row then the right column
	for c := 0; c < b.cols; c++ {
		lines = append(lines, b.collectDiag(0, c, -1))
	}
	for r := 1; r < b.rows; r++ {
		lines = append(lines, b.collectDiag(r, b.cols-1, -1))
	}
	return lines
}

func (b *Board) collectDiag(row, col, dc int) []int {
	line := []int{}
	for b.inside(row, col) {
		line = append(line, b.cells[b.index(row, col)])
		row++
		col += dc
	}
	return line
}

// String renders the board top row first: X for Player1, O for Player2,
// # for blocks and . for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.cells[b.index(r, c)] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			case Blocked:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < b.cols; c++ {
		sb.WriteByte(byte('0' + c%10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// landingRow returns the row a piece dropped in col comes to rest on, or -1
// if the column is full.
func (b *Board) landingRow(col int) int {
	row := -1
	for r := 0; r < b.rows; r++ {
		if b.cells[b.index(r, col)] != Empty {
			break
		}
		row = r
	}
	return row
}

func (b *Board) copy() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	child := &Board{
		rows:    b.rows,
		cols:    b.cols,
		cells:   cells,
		next:    b.next,
		blocks:  b.blocks, // never mutated after construction
		counter: b.counter,
	}
	child.counter.add()
	return child
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}
