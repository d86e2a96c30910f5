package cards

import (
	"fmt"
	"strings"
)

// Parse creates a card from its shorthand, e.g. "10♠", "10s", "Qd" or "AH".
func Parse(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	var value string
	switch {
	case strings.HasSuffix(s, "♠"):
		suit, value = Spade, strings.TrimSuffix(s, "♠")
	case strings.HasSuffix(s, "♥"):
		suit, value = Heart, strings.TrimSuffix(s, "♥")
	case strings.HasSuffix(s, "♦"):
		suit, value = Diamond, strings.TrimSuffix(s, "♦")
	case strings.HasSuffix(s, "♣"):
		suit, value = Club, strings.TrimSuffix(s, "♣")
	default:
		value = s[:len(s)-1]
		switch s[len(s)-1:] {
		case "s", "S":
			suit = Spade
		case "h", "H":
			suit = Heart
		case "d", "D":
			suit = Diamond
		case "c", "C":
			suit = Club
		default:
			return Card{}, fmt.Errorf("invalid card suit: %q", s[len(s)-1:])
		}
	}

	for _, r := range Ranks {
		if strings.EqualFold(r.String(), value) {
			return Card{suit: suit, rank: r}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid card value: %q", value)
}

// MustParse is like Parse but panics on invalid input. Intended for fixtures.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseAll parses a space separated list of cards, e.g. "A♠ K♥".
func MustParseAll(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		out = append(out, MustParse(f))
	}
	return out
}
