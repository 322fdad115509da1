package entities

// Stats is the persisted win/loss record
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Valid reports whether the record could have been produced by play
func (s Stats) Valid() bool {
	return s.Wins >= 0 && s.Losses >= 0
}

// RoundsDecided is the number of rounds that changed a counter
func (s Stats) RoundsDecided() int {
	return s.Wins + s.Losses
}
