package roulette

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/casino/ledger"
)

// Table holds the bets placed since the last spin.
type Table struct {
	ledger *ledger.Ledger
	wheel  *Wheel
	bets   []Bet
}

func NewTable(l *ledger.Ledger, w *Wheel) *Table {
	return &Table{ledger: l, wheel: w}
}

// Place stakes amount on c. On error the table is unchanged.
func (t *Table) Place(c Category, amount int) error {
	if c.Multiplier() == 0 {
		return fmt.Errorf("%q: %w", c, ErrUnknownBet)
	}
	if err := t.ledger.Stake(amount, "bet "+string(c)); err != nil {
		return err
	}
	t.bets = append(t.bets, Bet{Category: c, Amount: amount})
	return nil
}

// Bets returns the active bets in the order they were placed.
func (t *Table) Bets() []Bet {
	out := make([]Bet, len(t.bets))
	copy(out, t.bets)
	return out
}

// Total returns the money on the table.
func (t *Table) Total() int {
	total := 0
	for _, b := range t.bets {
		total += b.Amount
	}
	return total
}

// Clear refunds every active bet and reports the amount returned.
func (t *Table) Clear() int {
	t.bets = nil
	return t.ledger.Refund("clear bets")
}

// Spin spins the wheel, credits the winnings and clears the table.
func (t *Table) Spin() (SpinResult, error) {
	if len(t.bets) == 0 {
		return SpinResult{}, ErrNoBets
	}
	r := Resolve(t.wheel.Spin(), t.bets)
	r.ID = uuid.NewString()
	if err := t.ledger.Settle(r.Total, ledger.OutcomeNone, fmt.Sprintf("spin %s on %d", r.ID, r.Number)); err != nil {
		return SpinResult{}, err
	}
	t.bets = nil
	return r, nil
}
