package game

// Streak is a maximal run of a single cell value within a line.
type Streak struct {
	Value  int
	Length int
}

// Streaks returns every maximal run of equal values in line, scanning left to
// right. Runs of empty and blocked cells are reported too.
func Streaks(line []int) []Streak {
	if len(line) == 0 {
		return nil
	}

	streaks := []Streak{}
	prev := line[0]
	length := 1
	for _, curr := range line[1:] {
		if curr == prev {
			length++
			continue
		}
		streaks = append(streaks, Streak{Value: prev, Length: length})
		prev = curr
		length = 1
	}
	return append(streaks, Streak{Value: prev, Length: length})
}

// OpenStreaks returns the player runs of length >= 2 that still have room to
// grow: at least one side touches an empty cell or an end of the line. A run
// squeezed between opposing pieces or blocks on both sides is dropped. A line
// end counts as an open side, so [1 1 -1] reports the pair of 1s whether or
// not an empty cell appears anywhere else in the line.
func OpenStreaks(line []int) []Streak {
	streaks := []Streak{}
	start := 0
	for _, s := range Streaks(line) {
		end := start + s.Length // exclusive
		if isPlayer(s.Value) && s.Length >= 2 {
			openBefore := start == 0 || line[start-1] == Empty
			openAfter := end == len(line) || line[end] == Empty
			if openBefore || openAfter {
				streaks = append(streaks, s)
			}
		}
		start = end
	}
	return streaks
}

func isPlayer(value int) bool {
	return value == Player1 || value == Player2
}
