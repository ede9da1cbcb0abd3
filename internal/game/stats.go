package game

// Stats tracks the numbers the player cares about.
type Stats struct {
	ShipsLeft  int
	Score      int
	Level      int
	HighScore  int // never reset
	GameActive bool
}

// Reset prepares the per-game statistics for a new game.
func (st *Stats) Reset(shipLimit int) {
	st.ShipsLeft = shipLimit
	st.Score = 0
	st.Level = 1
}

// CheckHighScore raises the high score to the score if it was beaten and
// reports whether it was.
func (st *Stats) CheckHighScore() bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}
