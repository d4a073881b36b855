package experiments

import (
	"connect383/experiments/metrics"
	"time"
)

// AgentSummary tallies an agent's results and search effort over an
// experiment.
type AgentSummary struct {
	Agent  metrics.AgentConfig
	Games  int
	Wins   int
	Losses int
	Draws  int
	Moves  int
	Nodes  int64
	Search time.Duration
}

// NodesPerSecond is the agent's search throughput, 0 if it never searched.
func (s AgentSummary) NodesPerSecond() float64 {
	if s.Search <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Search.Seconds()
}

// Summarize folds game and move records into one summary per agent, in the
// order the agents are configured.
func Summarize(agents []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []AgentSummary {
	index := make(map[int]int, len(agents))
	summaries := make([]AgentSummary, len(agents))
	for i, a := range agents {
		index[a.ID] = i
		summaries[i].Agent = a
	}

	// Which agent played each side of each game
	sides := make(map[int][2]int, len(games))
	for _, g := range games {
		sides[g.ID] = [2]int{g.Agent1, g.Agent2}
		for side, id := range []int{g.Agent1, g.Agent2} {
			i, ok := index[id]
			if !ok {
				continue
			}
			s := &summaries[i]
			s.Games++
			won := (side == 0 && g.Winner > 0) || (side == 1 && g.Winner < 0)
			switch {
			case g.Winner == 0:
				s.Draws++
			case won:
				s.Wins++
			default:
				s.Losses++
			}
		}
	}

	for _, m := range moves {
		players, ok := sides[m.Game]
		if !ok {
			continue
		}
		id := players[0]
		if m.Player < 0 {
			id = players[1]
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		summaries[i].Moves++
		summaries[i].Nodes += m.Nodes
		summaries[i].Search += m.Duration
	}
	return summaries
}
