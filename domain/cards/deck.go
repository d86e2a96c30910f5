package cards

import "strings"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Stack represents multiple cards. The last element is the top of the stack.
type Stack []Card

// NewDeck52 creates a standard deck of 52 cards in suit-major order.
func NewDeck52() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{suit: suit, rank: rank})
		}
	}
	return deck
}

// String joins the plain card representations with spaces.
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
