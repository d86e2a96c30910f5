package ledger

// Outcome is the result of a settled round from the player's point of view.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeBlackjack Outcome = "blackjack" // a win that also counts as a blackjack
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
	OutcomeNone      Outcome = "" // money moves, counters stay
)

// Stats are the running outcome counters persisted with the bankroll.
type Stats struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Pushes     int `json:"pushes"`
	Blackjacks int `json:"blackjacks"`
}

// Games returns the number of settled rounds. Blackjacks are already counted
// as wins.
func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Pushes
}

// WinRate returns the percentage of settled rounds that were won.
func (s Stats) WinRate() float64 {
	if s.Games() == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games()) * 100
}

func (s *Stats) record(o Outcome) {
	switch o {
	case OutcomeBlackjack:
		s.Wins++
		s.Blackjacks++
	case OutcomeWin:
		s.Wins++
	case OutcomeLoss:
		s.Losses++
	case OutcomePush:
		s.Pushes++
	}
}
