package blackjack

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/casino/ledger"
)

// DealerPolicy decides when the dealer draws.
type DealerPolicy struct {
	// StandOn is the lowest total, soft or hard, the dealer stands on.
	StandOn int
}

// DefaultDealerPolicy hits on 16 and stands on every 17.
var DefaultDealerPolicy = DealerPolicy{StandOn: 17}

func (p DealerPolicy) ShouldHit(h Hand) bool {
	return h.Value() < p.StandOn
}

// Resolve settles a finished round. The first matching rule wins:
// both blackjack, player blackjack, dealer blackjack, player bust, dealer
// bust, then the higher total.
func Resolve(player, dealer Hand) Settlement {
	s := Settlement{
		Wager:       player.Wager,
		PlayerValue: player.Value(),
		DealerValue: dealer.Value(),
	}
	switch {
	case player.IsBlackjack() && dealer.IsBlackjack():
		s.Result, s.Outcome, s.Payout = ResultBothBlackjack, ledger.OutcomePush, player.Wager
	case player.IsBlackjack():
		s.Result, s.Outcome, s.Payout = ResultBlackjack, ledger.OutcomeBlackjack, player.Wager*5/2
	case dealer.IsBlackjack():
		s.Result, s.Outcome = ResultDealerBlackjack, ledger.OutcomeLoss
	case player.IsBusted():
		s.Result, s.Outcome = ResultPlayerBust, ledger.OutcomeLoss
	case dealer.IsBusted():
		s.Result, s.Outcome, s.Payout = ResultDealerBust, ledger.OutcomeWin, player.Wager*2
	case s.PlayerValue > s.DealerValue:
		s.Result, s.Outcome, s.Payout = ResultWin, ledger.OutcomeWin, player.Wager*2
	case s.PlayerValue < s.DealerValue:
		s.Result, s.Outcome = ResultLoss, ledger.OutcomeLoss
	default:
		s.Result, s.Outcome, s.Payout = ResultPush, ledger.OutcomePush, player.Wager
	}
	return s
}

// Message is the line announced to the player once the round is settled.
func (s Settlement) Message() string {
	switch s.Result {
	case ResultBothBlackjack:
		return "Both have Blackjack! PUSH!"
	case ResultBlackjack:
		return fmt.Sprintf("BLACKJACK! You win $%d!", s.Net())
	case ResultDealerBlackjack:
		return "Dealer has Blackjack! You lose!"
	case ResultPlayerBust:
		return "You busted! Dealer wins!"
	case ResultDealerBust:
		return fmt.Sprintf("Dealer busted! You win $%d!", s.Net())
	case ResultWin:
		return fmt.Sprintf("You win $%d! (%d vs %d)", s.Net(), s.PlayerValue, s.DealerValue)
	case ResultLoss:
		return fmt.Sprintf("Dealer wins! (%d vs %d)", s.DealerValue, s.PlayerValue)
	default:
		return fmt.Sprintf("Push! It's a tie at %d", s.PlayerValue)
	}
}

// CanDouble reports whether the player may double down: only on the first
// two cards and only if the balance covers the wager again.
func CanDouble(h Hand, balance int) bool {
	return len(h.Cards) == 2 && balance >= h.Wager
}

// ParseBet reads a typed wager. quit is true when the player typed q.
func ParseBet(input string, balance int) (amount int, quit bool, err error) {
	if strings.EqualFold(strings.TrimSpace(input), string(ActionQuit)) {
		return 0, true, nil
	}
	amount, err = ledger.ParseAmount(input, balance)
	if err != nil {
		return 0, false, fmt.Errorf("invalid bet: %w", err)
	}
	return amount, false, nil
}

// ParseAction reads a typed decision, case-insensitively.
func ParseAction(input string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(input)))
	switch a {
	case ActionHit, ActionStand, ActionDouble, ActionQuit:
		return a, nil
	default:
		return "", fmt.Errorf("%q: %w", input, ErrIllegalAction)
	}
}
