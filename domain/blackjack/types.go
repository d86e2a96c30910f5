package blackjack

import (
	"errors"

	"github.com/luca-patrignani/casino/domain/cards"
	"github.com/luca-patrignani/casino/ledger"
)

var (
	// ErrIllegalAction is returned for actions that are unknown or not
	// allowed in the current state of the hand.
	ErrIllegalAction = errors.New("illegal action")
	// ErrWrongPhase is returned when a round operation is called out of order.
	ErrWrongPhase = errors.New("wrong phase")
)

// Phase is the state of a Round.
type Phase string

const (
	PhaseAwaitingBet  Phase = "awaiting_bet"
	PhaseDealt        Phase = "dealt"
	PhasePlayerActing Phase = "player_acting"
	PhaseDealerActing Phase = "dealer_acting"
	PhaseSettled      Phase = "settled"
)

// Action is a player decision, typed as a single letter.
type Action string

const (
	ActionHit    Action = "h"
	ActionStand  Action = "s"
	ActionDouble Action = "d"
	ActionQuit   Action = "q"
)

// Step tells the caller what happened after a player decision.
type Step int

const (
	// Continue means the player acts again.
	Continue Step = iota
	// Done means the player's turn is over.
	Done
	// Aborted means the player quit.
	Aborted
)

func (s Step) String() string {
	switch s {
	case Continue:
		return "continue"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result names the rule that decided a round.
type Result string

const (
	ResultBothBlackjack   Result = "both_blackjack"
	ResultBlackjack       Result = "blackjack"
	ResultDealerBlackjack Result = "dealer_blackjack"
	ResultPlayerBust      Result = "player_bust"
	ResultDealerBust      Result = "dealer_bust"
	ResultWin             Result = "win"
	ResultLoss            Result = "loss"
	ResultPush            Result = "push"
)

// Settlement is the outcome of a round. Payout is what goes back to the
// bankroll, the wager included.
type Settlement struct {
	Result      Result
	Outcome     ledger.Outcome
	Wager       int
	Payout      int
	PlayerValue int
	DealerValue int
}

// Net is the bankroll change of the round relative to before the bet.
func (s Settlement) Net() int {
	return s.Payout - s.Wager
}

// TableView is what the console shows of a round. While the dealer's hole
// card is hidden Dealer holds only the up card and DealerValue is zero.
type TableView struct {
	RoundID         string
	Bankroll        int
	Wager           int
	Player          []cards.Card
	PlayerValue     int
	PlayerSoft      bool
	PlayerBlackjack bool
	PlayerBusted    bool
	Dealer          []cards.Card
	DealerValue     int
	DealerHidden    bool
	DealerBlackjack bool
}
