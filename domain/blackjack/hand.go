package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/casino/domain/cards"
)

// Hand is a sequence of cards in draw order. Only the player's hand carries
// a wager.
type Hand struct {
	Cards []cards.Card
	Wager int
}

// Add appends a card to the hand.
func (h *Hand) Add(c cards.Card) {
	h.Cards = append(h.Cards, c)
}

// Value returns the best blackjack total of the cards.
func Value(cs []cards.Card) int {
	v, _ := total(cs)
	return v
}

// total counts every ace as 11 and then downgrades aces to 1, one at a
// time, while the sum is over 21. soft reports an ace still counted as 11.
func total(cs []cards.Card) (value int, soft bool) {
	aces := 0
	for _, c := range cs {
		value += c.PointValue()
		if c.IsAce() {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value, aces > 0
}

func (h Hand) Value() int {
	return Value(h.Cards)
}

func (h Hand) IsSoft() bool {
	_, soft := total(h.Cards)
	return soft
}

// IsBlackjack reports a two-card 21.
func (h Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

func (h Hand) IsBusted() bool {
	return h.Value() > 21
}

func (h Hand) String() string {
	return fmt.Sprintf("%s (Value: %d)", cards.Stack(h.Cards), h.Value())
}
