package cards

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Suit of a playing card (0-3).
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Rank of a playing card (1-13).
type Rank uint8

// Card rank constants for face cards and ace
const (
	Ace   Rank = 1  // A (nominally 11 points)
	Ten   Rank = 10 // 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
)

// Suits and Ranks list every suit and rank in deck order.
var (
	Suits = []Suit{Spade, Heart, Diamond, Club}
	Ranks = []Rank{2, 3, 4, 5, 6, 7, 8, 9, Ten, Jack, Queen, King, Ace}
)

// Card represents a playing card with suit and rank.
// A Card is immutable once created.
type Card struct {
	suit Suit // 0-3: clubs, diamonds, hearts, spades
	rank Rank // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank == 0 || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// PointValue returns the blackjack value of the card: face cards count 10,
// aces count 11 (hands downgrade them to 1 when needed) and numerals count
// their number.
func (c Card) PointValue() int {
	switch {
	case c.rank == Ace:
		return 11
	case c.rank >= Jack:
		return 10
	default:
		return int(c.rank)
	}
}

// IsRed reports whether the card is a diamond or a heart.
func (c Card) IsRed() bool {
	return c.suit == Diamond || c.suit == Heart
}

// String returns the plain representation of the card, e.g. "10♠" or "A♥".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Styled returns the card with the suit coloured for the terminal.
func (c Card) Styled() string {
	if c.IsRed() {
		return c.rank.String() + pterm.LightRed(c.suit.String())
	}
	return c.rank.String() + pterm.Gray(c.suit.String())
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}
