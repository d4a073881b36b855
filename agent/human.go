package agent

import (
	"bufio"
	"connect383/experiments/metrics"
	"connect383/game"
	"connect383/searcher"
	"connect383/utils"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

type humanAgent struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHumanAgent returns an agent that asks for a column on in, prompting on
// out, until a legal one is entered.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) FindMove(state game.State) (game.Move, game.State, metrics.SearchMetric, error) {
	start := time.Now()
	successors := state.Successors()
	if len(successors) == 0 {
		return 0, nil, metrics.SearchMetric{}, searcher.ErrNoMoves
	}
	moves := make([]game.Move, len(successors))
	for i, successor := range successors {
		moves[i] = successor.Move
	}
	slices.Sort(moves)

	if s, ok := state.(fmt.Stringer); ok {
		fmt.Fprintln(a.out, s.String())
	}
	for {
		fmt.Fprintf(a.out, "Legal moves: %v\nYour move: ", moves)
		line, err := a.in.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return 0, nil, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
		}

		col, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(a.out, "Please enter a column number.")
			continue
		}
		i := utils.FindIndex(moves, game.Move(col))
		if i < 0 {
			fmt.Fprintf(a.out, "Column %d is not a legal move.\n", col)
			continue
		}
		for _, successor := range successors {
			if successor.Move == moves[i] {
				return successor.Move, successor.State, metrics.SearchMetric{Duration: time.Since(start)}, nil
			}
		}
	}
}

func (a *humanAgent) String() string {
	return "human"
}
