package floodfill

import "sort"

// DefaultLeaderboardCapacity is the number of scores kept by default.
const DefaultLeaderboardCapacity = 5

// Leaderboard keeps the best scores in descending order.
type Leaderboard struct {
	capacity int
	scores   []int
}

// NewLeaderboard creates an empty leaderboard holding at most capacity scores.
func NewLeaderboard(capacity int) *Leaderboard {
	if capacity <= 0 {
		capacity = DefaultLeaderboardCapacity
	}
	return &Leaderboard{capacity: capacity}
}

// Capacity returns the maximum number of scores kept.
func (l *Leaderboard) Capacity() int {
	return l.capacity
}

// Record inserts a score and returns its 1-based rank,
// or 0 if it did not make the board.
func (l *Leaderboard) Record(score int) int {
	l.scores = append(l.scores, score)
	idx := len(l.scores) - 1
	// Equal scores keep insertion order, so the new entry ranks after them.
	sort.SliceStable(l.scores, func(i, j int) bool {
		return l.scores[i] > l.scores[j]
	})
	for i := len(l.scores) - 1; i >= 0; i-- {
		if l.scores[i] == score {
			idx = i
			break
		}
	}
	if len(l.scores) > l.capacity {
		l.scores = l.scores[:l.capacity]
	}
	if idx >= l.capacity {
		return 0
	}
	return idx + 1
}

// Load replaces the board with previously persisted scores.
func (l *Leaderboard) Load(scores []int) {
	l.scores = l.scores[:0]
	for _, s := range scores {
		l.Record(s)
	}
}

// TopScores returns a copy of the scores, best first.
func (l *Leaderboard) TopScores() []int {
	out := make([]int, len(l.scores))
	copy(out, l.scores)
	return out
}
