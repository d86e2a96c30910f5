package blackjack

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/casino/domain/cards"
	"github.com/luca-patrignani/casino/ledger"
)

// Drawer hands out cards. *deck.Shoe is the production implementation.
type Drawer interface {
	Draw() cards.Card
}

// Round is a single hand. Money moves through the ledger as the round
// progresses: the wager is staked on PlaceBet and on a double down, and the
// payout is credited when the round settles.
type Round struct {
	ID     string
	Player Hand
	Dealer Hand

	phase      Phase
	shoe       Drawer
	ledger     *ledger.Ledger
	policy     DealerPolicy
	settlement *Settlement
}

// NewRound starts a round waiting for a bet.
func NewRound(shoe Drawer, l *ledger.Ledger, policy DealerPolicy) *Round {
	return &Round{
		ID:     uuid.NewString(),
		phase:  PhaseAwaitingBet,
		shoe:   shoe,
		ledger: l,
		policy: policy,
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Settlement returns the outcome once the round is settled. It is false for
// aborted rounds.
func (r *Round) Settlement() (Settlement, bool) {
	if r.settlement == nil {
		return Settlement{}, false
	}
	return *r.settlement, true
}

func (r *Round) expect(p Phase) error {
	if r.phase != p {
		return fmt.Errorf("round %s is %s, expected %s: %w", r.ID, r.phase, p, ErrWrongPhase)
	}
	return nil
}

// PlaceBet stakes the wager. On error nothing changes and the round keeps
// waiting for a bet.
func (r *Round) PlaceBet(amount int) error {
	if err := r.expect(PhaseAwaitingBet); err != nil {
		return err
	}
	if err := r.ledger.Stake(amount, "bet "+r.ID); err != nil {
		return err
	}
	r.Player.Wager = amount
	r.phase = PhaseDealt
	return nil
}

// Deal gives two cards each, alternating player and dealer. A natural on
// either side settles the round at once.
func (r *Round) Deal() error {
	if err := r.expect(PhaseDealt); err != nil {
		return err
	}
	r.Player.Add(r.shoe.Draw())
	r.Dealer.Add(r.shoe.Draw())
	r.Player.Add(r.shoe.Draw())
	r.Dealer.Add(r.shoe.Draw())

	if r.Player.IsBlackjack() || r.Dealer.IsBlackjack() {
		return r.settle()
	}
	r.phase = PhasePlayerActing
	return nil
}

// CanDouble reports whether ActionDouble is currently legal.
func (r *Round) CanDouble() bool {
	return r.phase == PhasePlayerActing && CanDouble(r.Player, r.ledger.Balance())
}

// Act applies a player decision. A bust settles the round; reaching 21,
// standing or doubling hands the turn to the dealer.
func (r *Round) Act(a Action) (Step, error) {
	if err := r.expect(PhasePlayerActing); err != nil {
		return Continue, err
	}
	switch a {
	case ActionHit:
		r.Player.Add(r.shoe.Draw())
		if r.Player.IsBusted() {
			return Done, r.settle()
		}
		if r.Player.Value() == 21 {
			r.phase = PhaseDealerActing
			return Done, nil
		}
		return Continue, nil
	case ActionStand:
		r.phase = PhaseDealerActing
		return Done, nil
	case ActionDouble:
		if !r.CanDouble() {
			return Continue, fmt.Errorf("double down with %d cards and balance %d: %w", len(r.Player.Cards), r.ledger.Balance(), ErrIllegalAction)
		}
		if err := r.ledger.Stake(r.Player.Wager, "double "+r.ID); err != nil {
			return Continue, err
		}
		r.Player.Wager *= 2
		r.Player.Add(r.shoe.Draw())
		if r.Player.IsBusted() {
			return Done, r.settle()
		}
		r.phase = PhaseDealerActing
		return Done, nil
	case ActionQuit:
		r.Abort()
		return Aborted, nil
	default:
		return Continue, fmt.Errorf("%q: %w", a, ErrIllegalAction)
	}
}

// DealerHit draws one card for the dealer if the policy asks for it.
// It returns false once the dealer stands.
func (r *Round) DealerHit() (cards.Card, bool, error) {
	if err := r.expect(PhaseDealerActing); err != nil {
		return cards.Card{}, false, err
	}
	if !r.policy.ShouldHit(r.Dealer) {
		return cards.Card{}, false, nil
	}
	c := r.shoe.Draw()
	r.Dealer.Add(c)
	return c, true, nil
}

// PlayDealer runs the dealer's turn to the end and settles the round.
// onDraw, if not nil, sees every card the dealer takes.
func (r *Round) PlayDealer(onDraw func(cards.Card)) (Settlement, error) {
	for {
		c, hit, err := r.DealerHit()
		if err != nil {
			return Settlement{}, err
		}
		if !hit {
			break
		}
		if onDraw != nil {
			onDraw(c)
		}
	}
	return r.Settle()
}

// Settle resolves the round after the dealer has stood.
func (r *Round) Settle() (Settlement, error) {
	if err := r.expect(PhaseDealerActing); err != nil {
		return Settlement{}, err
	}
	if r.policy.ShouldHit(r.Dealer) {
		return Settlement{}, fmt.Errorf("dealer still has to draw on %d: %w", r.Dealer.Value(), ErrWrongPhase)
	}
	if err := r.settle(); err != nil {
		return Settlement{}, err
	}
	return *r.settlement, nil
}

func (r *Round) settle() error {
	s := Resolve(r.Player, r.Dealer)
	if err := r.ledger.Settle(s.Payout, s.Outcome, fmt.Sprintf("%s %s", s.Result, r.ID)); err != nil {
		return err
	}
	r.settlement = &s
	r.phase = PhaseSettled
	return nil
}

// Abort ends the round without a settlement. Whatever is staked goes back
// to the bankroll and the statistics are untouched.
func (r *Round) Abort() int {
	if r.phase == PhaseSettled {
		return 0
	}
	r.phase = PhaseSettled
	return r.ledger.Refund("abort " + r.ID)
}

// View returns the table as shown to the player. The dealer's hole card
// stays hidden until reveal is set or the round is settled.
func (r *Round) View(reveal bool) TableView {
	reveal = reveal || r.phase == PhaseSettled
	v := TableView{
		RoundID:         r.ID,
		Bankroll:        r.ledger.Balance(),
		Wager:           r.Player.Wager,
		Player:          append([]cards.Card(nil), r.Player.Cards...),
		PlayerValue:     r.Player.Value(),
		PlayerSoft:      r.Player.IsSoft(),
		PlayerBlackjack: r.Player.IsBlackjack(),
		PlayerBusted:    r.Player.IsBusted(),
	}
	switch {
	case reveal:
		v.Dealer = append([]cards.Card(nil), r.Dealer.Cards...)
		v.DealerValue = r.Dealer.Value()
		v.DealerBlackjack = r.Dealer.IsBlackjack()
	case len(r.Dealer.Cards) > 0:
		v.Dealer = []cards.Card{r.Dealer.Cards[0]}
		v.DealerHidden = len(r.Dealer.Cards) > 1
	}
	return v
}
