package game

// EvaluateStreaks scores a state from Player1's perspective by crediting each
// player with 1 per open streak of two or more and length^2 per streak of three
// or more, over every row, column and diagonal. Its cost depends on the board
// dimensions only.
func EvaluateStreaks(s State) float64 {
	tally := map[int]int{}
	for _, lines := range [][][]int{s.Rows(), s.Cols(), s.Diags()} {
		for _, line := range lines {
			for _, streak := range OpenStreaks(line) {
				if streak.Length >= 2 {
					tally[streak.Value]++
				}
			}
			for _, streak := range Streaks(line) {
				if isPlayer(streak.Value) && streak.Length >= 3 {
					tally[streak.Value] += streak.Length * streak.Length
				}
			}
		}
	}
	return float64(tally[Player1] - tally[Player2])
}

// lineScores sums length^2 over streaks of three or more for each player,
// which is how finished games are scored.
func lineScores(lines ...[][]int) (p1, p2 int) {
	for _, group := range lines {
		for _, line := range group {
			for _, streak := range Streaks(line) {
				if streak.Length < 3 {
					continue
				}
				switch streak.Value {
				case Player1:
					p1 += streak.Length * streak.Length
				case Player2:
					p2 += streak.Length * streak.Length
				}
			}
		}
	}
	return p1, p2
}
